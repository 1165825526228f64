package statuswriter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artpar/userhub/pkg/statuswriter"
)

func TestWrap_DefaultStatus(t *testing.T) {
	w := statuswriter.Wrap(httptest.NewRecorder())
	if w.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", w.Status)
	}
}

func TestWriteHeader_Recorded(t *testing.T) {
	rec := httptest.NewRecorder()
	w := statuswriter.Wrap(rec)

	w.WriteHeader(http.StatusConflict)

	if w.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", w.Status)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("underlying writer got %d, want 409", rec.Code)
	}
}

func TestWrite_PassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	w := statuswriter.Wrap(rec)

	w.Write([]byte("ok"))

	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
	if w.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200 after implicit header", w.Status)
	}
}
