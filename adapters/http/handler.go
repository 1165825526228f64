// Package http provides the REST API handlers for the user resource.
// It maps method+path pairs onto service operations and translates their
// outcomes to status codes and JSON bodies.
package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/artpar/userhub/adapters/metrics"
	"github.com/artpar/userhub/app"
	"github.com/artpar/userhub/domain/user"
	"github.com/artpar/userhub/pkg/httperr"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Handler provides the user API endpoints.
type Handler struct {
	users       *app.UserService
	logger      zerolog.Logger
	metrics     *metrics.Collector
	corsEnabled bool
}

// Deps contains dependencies for the API handler.
type Deps struct {
	Users   *app.UserService
	Logger  zerolog.Logger
	Metrics *metrics.Collector // optional
	CORS    bool
}

// NewHandler creates a new user API handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		users:       deps.Users,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		corsEnabled: deps.CORS,
	}
}

// Router returns the API router.
//
// The id segment is exactly one non-empty path segment after /users/; deeper
// or malformed paths, and known paths with the wrong method, all resolve to
// the JSON not-found response.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(h.requestLogger)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	if h.corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowedHeaders: []string{"Content-Type"},
		}))
	}

	r.Get("/users/", h.ListUsers)
	r.Post("/users/", h.CreateUser)
	r.Get("/users/{id}", h.GetUser)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, httperr.NotFound("not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, httperr.NotFound("not found"))
	})

	return r
}

// ListUsers returns all users ordered by ascending id, with all fields.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.users.List(r.Context()))
}

// CreateUser creates a user from a full JSON field set and returns its Ref.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ref, err := h.users.Create(r.Context(), fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ref)
}

// GetUser returns a single user by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UpdateUser applies a partial JSON field set to a user and returns the
// updated user.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, err)
		return
	}

	u, err := h.users.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// DeleteUser removes a user. Success has no body.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeFields reads the JSON request body into a field mapping. The
// Content-Type header must declare JSON; the body is read to its declared
// length by the server transport.
func decodeFields(r *http.Request) (user.Fields, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, httperr.UnsupportedMedia("expected application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, httperr.BadRequest("read body: " + err.Error())
	}

	var fields user.Fields
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, httperr.BadRequest("invalid json: " + err.Error())
	}
	return fields, nil
}

// writeJSON serializes data and writes it with explicit Content-Length.
func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"response encoding failed"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write(body)
}

// writeError maps an error to its status and the error envelope. Unexpected
// errors map to 500; only the message text is exposed.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, httperr.StatusOf(err), map[string]string{"error": err.Error()})
}
