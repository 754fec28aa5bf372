package api

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/centralbjl/directory/internal/authz"
	"github.com/centralbjl/directory/internal/metrics"
	"github.com/centralbjl/directory/internal/validate"
	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

// kindPattern is the mux route constraint matching the collection segments.
const kindPattern = "companies|jobs|travel-packages|events|foods"

// kindSegments maps the URL path segment of each collection to its kind.
var kindSegments = map[string]models.ListingKind{
	"companies":       models.KindCompany,
	"jobs":            models.KindJob,
	"travel-packages": models.KindTravelPackage,
	"events":          models.KindEvent,
	"foods":           models.KindFood,
}

func kindFromRequest(r *http.Request) (models.ListingKind, bool) {
	kind, ok := kindSegments[mux.Vars(r)["kind"]]
	return kind, ok
}

// ListingRepos bundles the per-kind stores the listing handler reads and
// writes. The sqlite repository satisfies all of them.
type ListingRepos interface {
	repository.CompanyRepo
	repository.JobRepo
	repository.TravelPackageRepo
	repository.EventRepo
	repository.FoodRepo
}

type ListingHandler struct {
	repos     ListingRepos
	validator *validate.Validator
	collector *metrics.Collector
}

// NewListingHandler creates a new ListingHandler with required dependencies.
// The collector may be nil in tests.
func NewListingHandler(repos ListingRepos, validator *validate.Validator, collector *metrics.Collector) *ListingHandler {
	return &ListingHandler{repos: repos, validator: validator, collector: collector}
}

func queryFromRequest(r *http.Request, base repository.ListingQuery) repository.ListingQuery {
	q := base
	if v := r.URL.Query().Get("category"); v != "" {
		q.Category = v
	}
	if v := r.URL.Query().Get("neighborhood"); v != "" {
		q.Neighborhood = v
	}
	return q
}

// List serves the public collection pages: only active listings, optionally
// narrowed by category and neighborhood.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		writeError(w, models.ErrNotFound)
		return
	}

	q := queryFromRequest(r, authz.PublicScope())
	out, err := h.list(r, kind, q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *ListingHandler) list(r *http.Request, kind models.ListingKind, q repository.ListingQuery) (any, error) {
	ctx := r.Context()
	switch kind {
	case models.KindCompany:
		return h.repos.ListCompanies(ctx, q)
	case models.KindJob:
		return h.repos.ListJobs(ctx, q)
	case models.KindTravelPackage:
		return h.repos.ListTravelPackages(ctx, q)
	case models.KindEvent:
		return h.repos.ListEvents(ctx, q)
	case models.KindFood:
		return h.repos.ListFoods(ctx, q)
	}
	return nil, models.ErrNotFound
}

// Get serves a single listing. Non-active listings are only visible to their
// owner and to admins; everyone else gets a 404, not a 403, so the existence
// of unapproved listings is not leaked.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		writeError(w, models.ErrNotFound)
		return
	}
	id := mux.Vars(r)["id"]
	actor := ProfileFromContext(r.Context())

	meta, payload, err := h.get(r, kind, id)
	if err != nil {
		writeError(w, err)
		return
	}
	if meta == nil || !authz.CanView(actor, meta.UserID, meta.Status) {
		writeError(w, models.ErrNotFound)
		return
	}
	writeJSON(w, payload, http.StatusOK)
}

func (h *ListingHandler) get(r *http.Request, kind models.ListingKind, id string) (*models.ListingMeta, any, error) {
	ctx := r.Context()
	switch kind {
	case models.KindCompany:
		c, err := h.repos.GetCompany(ctx, id)
		if err != nil || c == nil {
			return nil, nil, err
		}
		return &c.ListingMeta, c, nil
	case models.KindJob:
		j, err := h.repos.GetJob(ctx, id)
		if err != nil || j == nil {
			return nil, nil, err
		}
		return &j.ListingMeta, j, nil
	case models.KindTravelPackage:
		p, err := h.repos.GetTravelPackage(ctx, id)
		if err != nil || p == nil {
			return nil, nil, err
		}
		return &p.ListingMeta, p, nil
	case models.KindEvent:
		e, err := h.repos.GetEvent(ctx, id)
		if err != nil || e == nil {
			return nil, nil, err
		}
		return &e.ListingMeta, e, nil
	case models.KindFood:
		f, err := h.repos.GetFood(ctx, id)
		if err != nil || f == nil {
			return nil, nil, err
		}
		return &f.ListingMeta, f, nil
	}
	return nil, nil, models.ErrNotFound
}

// Create registers a new listing for the authenticated caller. The payload is
// schema-validated first; the stored record always starts as pending with the
// caller as owner, regardless of what the payload claims.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		writeError(w, models.ErrNotFound)
		return
	}
	actor := ProfileFromContext(r.Context())
	if actor == nil {
		writeError(w, models.ErrUnauthenticated)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(r.Context(), kind, body); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.create(r, kind, body, actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.collector != nil {
		h.collector.RecordListingCreated(kind)
	}
	logger.Info("listing created",
		slog.String("kind", string(kind)),
		slog.String("owner", actor.ID),
	)
	writeJSON(w, created, http.StatusCreated)
}

func (h *ListingHandler) create(r *http.Request, kind models.ListingKind, body []byte, ownerID string) (any, error) {
	ctx := r.Context()
	// Lifecycle fields are owned by the server. Resetting the embedded meta
	// discards any id, status or ownership the client tried to smuggle in.
	switch kind {
	case models.KindCompany:
		var c models.Company
		if err := json.Unmarshal(body, &c); err != nil {
			return nil, err
		}
		c.ListingMeta = models.ListingMeta{UserID: ownerID}
		if err := h.repos.CreateCompany(ctx, &c); err != nil {
			return nil, err
		}
		return &c, nil
	case models.KindJob:
		var j models.Job
		if err := json.Unmarshal(body, &j); err != nil {
			return nil, err
		}
		j.ListingMeta = models.ListingMeta{UserID: ownerID}
		if err := h.repos.CreateJob(ctx, &j); err != nil {
			return nil, err
		}
		return &j, nil
	case models.KindTravelPackage:
		var p models.TravelPackage
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, err
		}
		p.ListingMeta = models.ListingMeta{UserID: ownerID}
		if err := h.repos.CreateTravelPackage(ctx, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case models.KindEvent:
		var e models.Event
		if err := json.Unmarshal(body, &e); err != nil {
			return nil, err
		}
		e.ListingMeta = models.ListingMeta{UserID: ownerID}
		if err := h.repos.CreateEvent(ctx, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case models.KindFood:
		var f models.Food
		if err := json.Unmarshal(body, &f); err != nil {
			return nil, err
		}
		f.ListingMeta = models.ListingMeta{UserID: ownerID}
		if err := h.repos.CreateFood(ctx, &f); err != nil {
			return nil, err
		}
		return &f, nil
	}
	return nil, models.ErrNotFound
}

// dashboardResponse groups the caller's listings per collection. Admins see
// every listing; users see their own rows in any status.
type dashboardResponse struct {
	Companies      []models.Company       `json:"companies"`
	Jobs           []models.Job           `json:"jobs"`
	TravelPackages []models.TravelPackage `json:"travel_packages"`
	Events         []models.Event         `json:"events"`
	Foods          []models.Food          `json:"foods"`
}

// Dashboard serves the authenticated caller's own view of all collections.
// The visibility scope is applied at the query, never by post-filtering.
func (h *ListingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor := ProfileFromContext(r.Context())
	if actor == nil {
		writeError(w, models.ErrUnauthenticated)
		return
	}

	resp, err := h.collect(r, authz.ListScope(actor))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp, http.StatusOK)
}

func (h *ListingHandler) collect(r *http.Request, q repository.ListingQuery) (*dashboardResponse, error) {
	ctx := r.Context()
	var resp dashboardResponse
	var err error
	if resp.Companies, err = h.repos.ListCompanies(ctx, q); err != nil {
		return nil, err
	}
	if resp.Jobs, err = h.repos.ListJobs(ctx, q); err != nil {
		return nil, err
	}
	if resp.TravelPackages, err = h.repos.ListTravelPackages(ctx, q); err != nil {
		return nil, err
	}
	if resp.Events, err = h.repos.ListEvents(ctx, q); err != nil {
		return nil, err
	}
	if resp.Foods, err = h.repos.ListFoods(ctx, q); err != nil {
		return nil, err
	}
	return &resp, nil
}
