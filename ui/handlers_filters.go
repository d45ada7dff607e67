package ui

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"goattrition/domain/core"
	"goattrition/domain/filter"
	"goattrition/internal/errors"
)

// saveFilterRequest names a filter spec for persistence
type saveFilterRequest struct {
	Name string      `json:"name"`
	Spec filter.Spec `json:"spec"`
}

func (a *App) handleSaveFilter(w http.ResponseWriter, r *http.Request) {
	var req saveFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("request body is not a valid saved filter"))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, errors.InvalidInput("filter name is required"))
		return
	}

	saved := filter.NewSavedFilter(strings.TrimSpace(req.Name), req.Spec)
	if existing, err := a.filters.GetByName(r.Context(), saved.Name); err == nil {
		// Saving under an existing name updates that filter
		saved.ID = existing.ID
		saved.CreatedAt = existing.CreatedAt
		saved.UpdatedAt = time.Now()
	}

	if err := a.filters.Save(r.Context(), saved); err != nil {
		respondError(w, errors.Wrap(err, "failed to save filter"))
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (a *App) handleListFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := a.filters.List(r.Context())
	if err != nil {
		respondError(w, errors.Wrap(err, "failed to list filters"))
		return
	}
	if filters == nil {
		filters = []*filter.SavedFilter{}
	}
	respondJSON(w, http.StatusOK, filters)
}

func (a *App) handleGetFilter(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseFilterID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, errors.InvalidInput(err.Error()))
		return
	}

	saved, err := a.filters.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (a *App) handleDeleteFilter(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseFilterID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, errors.InvalidInput(err.Error()))
		return
	}

	if err := a.filters.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
