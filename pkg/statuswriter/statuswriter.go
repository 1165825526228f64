// Package statuswriter wraps an http.ResponseWriter to record the response
// status code, for logging and instrumentation middleware.
package statuswriter

import "net/http"

// Writer records the status code written to the underlying ResponseWriter.
// Handlers that never call WriteHeader report http.StatusOK.
type Writer struct {
	http.ResponseWriter
	Status int
}

// Wrap wraps w with status recording.
func Wrap(w http.ResponseWriter) *Writer {
	return &Writer{ResponseWriter: w, Status: http.StatusOK}
}

func (w *Writer) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}
