// internal/server/handler.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/pkg/registry"
)

// Handler exposes the activity registry over HTTP. It is a pass-through
// adapter: all domain decisions live in the registry.
type Handler struct {
	registry *registry.ActivityRegistry
	errors   *apperrors.ErrorWriter
	logger   logger.Logger
}

func NewHandler(reg *registry.ActivityRegistry, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		errors:   apperrors.NewErrorWriter(log),
		logger:   log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

// Routes builds the HTTP mux. Activity names arrive URL-path-encoded; the
// mux hands them to PathValue already decoded, and lookup is an exact string
// match against registry keys.
func (h *Handler) Routes(staticDir string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("GET /activities", h.handleListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.handleSignup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.handleUnregister)

	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.registry.ListAll())
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		h.errors.WriteHTTP(w, apperrors.NewMissingEmailError())
		return
	}

	if err := h.registry.Signup(activityName, email); err != nil {
		h.errors.WriteHTTP(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		h.errors.WriteHTTP(w, apperrors.NewMissingEmailError())
		return
	}

	if err := h.registry.Unregister(activityName, email); err != nil {
		h.errors.WriteHTTP(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
