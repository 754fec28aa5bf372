package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/centralbjl/directory/internal/moderation"
	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

type ModerationHandler struct {
	service     *moderation.Service
	listings    ListingRepos
	profileRepo repository.ProfileRepo
}

// NewModerationHandler creates a new ModerationHandler with required dependencies.
func NewModerationHandler(service *moderation.Service, listings ListingRepos, profileRepo repository.ProfileRepo) *ModerationHandler {
	return &ModerationHandler{service: service, listings: listings, profileRepo: profileRepo}
}

type setStatusRequest struct {
	Status models.Status `json:"status"`
}

// SetStatus applies a moderation transition to one listing. Authorization is
// decided by the moderation service; the handler only shapes the request.
func (h *ModerationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		writeError(w, models.ErrNotFound)
		return
	}
	id := mux.Vars(r)["id"]

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &models.ValidationError{Fields: []string{"body: invalid json"}})
		return
	}

	actor := ProfileFromContext(r.Context())
	if err := h.service.SetStatus(r.Context(), kind, id, req.Status, actor); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes one listing (owner or admin).
func (h *ModerationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		writeError(w, models.ErrNotFound)
		return
	}
	id := mux.Vars(r)["id"]

	actor := ProfileFromContext(r.Context())
	if err := h.service.Delete(r.Context(), kind, id, actor); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pending serves the admin moderation queue: every pending listing across all
// collections, grouped per collection.
func (h *ModerationHandler) Pending(w http.ResponseWriter, r *http.Request) {
	actor := ProfileFromContext(r.Context())
	if actor == nil {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	if actor.Role != models.RoleAdmin {
		writeError(w, models.ErrForbidden)
		return
	}

	ctx := r.Context()
	q := repository.ListingQuery{Status: models.StatusPending}

	var resp dashboardResponse
	var err error
	if resp.Companies, err = h.listings.ListCompanies(ctx, q); err != nil {
		writeError(w, err)
		return
	}
	if resp.Jobs, err = h.listings.ListJobs(ctx, q); err != nil {
		writeError(w, err)
		return
	}
	if resp.TravelPackages, err = h.listings.ListTravelPackages(ctx, q); err != nil {
		writeError(w, err)
		return
	}
	if resp.Events, err = h.listings.ListEvents(ctx, q); err != nil {
		writeError(w, err)
		return
	}
	if resp.Foods, err = h.listings.ListFoods(ctx, q); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, &resp, http.StatusOK)
}

// Users serves the admin user overview.
func (h *ModerationHandler) Users(w http.ResponseWriter, r *http.Request) {
	actor := ProfileFromContext(r.Context())
	if actor == nil {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	if actor.Role != models.RoleAdmin {
		writeError(w, models.ErrForbidden)
		return
	}

	profiles, err := h.profileRepo.ListProfiles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, profiles, http.StatusOK)
}
