package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dealbell/console/internal/store"
)

// viewBasePaths maps saved-view table keys back to their screens, both
// for redirecting after mutations and to reject unknown keys.
var viewBasePaths = map[string]string{
	"webhooks":   "/webhooks",
	"rules":      "/rules",
	"deliveries": "/deliveries",
	"audit":      "/audit",
}

// handleViewCreate saves the submitted table state under a name.
func (s *Server) handleViewCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	tableKey := r.PostFormValue("table")
	basePath, ok := viewBasePaths[tableKey]
	if !ok {
		http.Error(w, "unknown table", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	query := r.PostFormValue("query")

	view, err := s.store.CreateView(r.Context(), tableKey, name, query)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionViewCreate, "saved_view", view.ID, view.Name)
	redirectFlash(w, r, basePath, "View saved")
}

// handleViewDelete removes a saved view and returns to its screen.
func (s *Server) handleViewDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := s.store.GetView(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrViewNotFound) {
			http.NotFound(w, r)
			return
		}
		s.respondError(w, r, err, http.StatusInternalServerError, "")
		return
	}

	if err := s.store.DeleteView(r.Context(), id); err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionViewDelete, "saved_view", id, view.Name)

	basePath := viewBasePaths[view.TableKey]
	if basePath == "" {
		basePath = "/"
	}
	redirectFlash(w, r, basePath, "View deleted")
}
