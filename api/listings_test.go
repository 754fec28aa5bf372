package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/centralbjl/directory/api"
	"github.com/centralbjl/directory/internal/validate"
	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository/mock"
)

// newListingRouter mounts the listing handler the way SetupRoutes does, with
// the given profile injected as the authenticated caller (nil = anonymous).
func newListingRouter(t *testing.T, store *mock.Store, actor *models.Profile) *mux.Router {
	t.Helper()
	validator, err := validate.New()
	if err != nil {
		t.Fatalf("compile schemas: %v", err)
	}
	h := api.NewListingHandler(store, validator, nil)

	r := mux.NewRouter()
	if actor != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(api.ContextWithProfile(req.Context(), actor)))
			})
		})
	}
	r.HandleFunc("/v1/dashboard", h.Dashboard).Methods("GET")
	r.HandleFunc("/v1/{kind}", h.List).Methods("GET")
	r.HandleFunc("/v1/{kind}/{id}", h.Get).Methods("GET")
	r.HandleFunc("/v1/{kind}", h.Create).Methods("POST")
	return r
}

func seedCompany(store *mock.Store, id, owner string, status models.Status, category string) *models.Company {
	c := &models.Company{
		ListingMeta: models.ListingMeta{ID: id, UserID: owner, Status: status},
		Name:        "Padaria " + id,
		Category:    category,
		Address:     "Rua Principal, 100",
	}
	store.Companies[id] = c
	return c
}

func doRequest(r *mux.Router, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPublicShowsOnlyActive(t *testing.T) {
	store := mock.NewStore()
	seedCompany(store, "c1", "u1", models.StatusActive, "Padaria")
	seedCompany(store, "c2", "u1", models.StatusPending, "Padaria")
	seedCompany(store, "c3", "u2", models.StatusInactive, "Mercado")

	r := newListingRouter(t, store, nil)
	w := doRequest(r, http.MethodGet, "/v1/companies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got []models.Company
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("expected only active listing, got %+v", got)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	store := mock.NewStore()
	seedCompany(store, "c1", "u1", models.StatusActive, "Padaria")
	seedCompany(store, "c2", "u1", models.StatusActive, "Mercado")

	r := newListingRouter(t, store, nil)
	w := doRequest(r, http.MethodGet, "/v1/companies?category=Mercado", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got []models.Company
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("expected category filter applied, got %+v", got)
	}
}

func TestGetVisibility(t *testing.T) {
	owner := &models.Profile{ID: "u1", Role: models.RoleUser}
	admin := &models.Profile{ID: "a1", Role: models.RoleAdmin}
	stranger := &models.Profile{ID: "u2", Role: models.RoleUser}

	tests := []struct {
		name       string
		status     models.Status
		actor      *models.Profile
		wantStatus int
	}{
		{"ActiveVisibleAnonymously", models.StatusActive, nil, http.StatusOK},
		{"PendingHiddenFromAnonymous", models.StatusPending, nil, http.StatusNotFound},
		{"PendingHiddenFromStranger", models.StatusPending, stranger, http.StatusNotFound},
		{"PendingVisibleToOwner", models.StatusPending, owner, http.StatusOK},
		{"InactiveVisibleToAdmin", models.StatusInactive, admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewStore()
			seedCompany(store, "c1", "u1", tt.status, "Padaria")

			r := newListingRouter(t, store, tt.actor)
			w := doRequest(r, http.MethodGet, "/v1/companies/c1", nil)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d body=%s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateListing(t *testing.T) {
	owner := &models.Profile{ID: "u1", Role: models.RoleUser}

	t.Run("RequiresAuth", func(t *testing.T) {
		store := mock.NewStore()
		r := newListingRouter(t, store, nil)
		w := doRequest(r, http.MethodPost, "/v1/companies", []byte(`{}`))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 got %d", w.Code)
		}
	})

	t.Run("SchemaViolation", func(t *testing.T) {
		store := mock.NewStore()
		r := newListingRouter(t, store, owner)
		w := doRequest(r, http.MethodPost, "/v1/companies", []byte(`{"name":"X"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
		}
		var resp struct {
			Fields []string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Fields) == 0 {
			t.Fatalf("expected field errors, got %s", w.Body.String())
		}
	})

	t.Run("StartsPendingWithCallerAsOwner", func(t *testing.T) {
		store := mock.NewStore()
		r := newListingRouter(t, store, owner)
		// the client-supplied lifecycle fields must be discarded
		body := []byte(`{"name":"Padaria Central","category":"Padaria","address":"Rua A, 1","status":"active","user_id":"someone-else"}`)
		w := doRequest(r, http.MethodPost, "/v1/companies", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
		}
		var created models.Company
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.Status != models.StatusPending {
			t.Fatalf("expected pending, got %s", created.Status)
		}
		if created.UserID != owner.ID {
			t.Fatalf("expected owner %s, got %s", owner.ID, created.UserID)
		}
		if created.ID == "" {
			t.Fatalf("expected server-assigned id")
		}
		if store.Companies[created.ID] == nil {
			t.Fatalf("listing not stored")
		}
	})

	t.Run("EventPayload", func(t *testing.T) {
		store := mock.NewStore()
		r := newListingRouter(t, store, owner)
		body := []byte(`{"name":"Festa Junina","location":"Praça Central","event_date":"2026-06-24","is_free":true}`)
		w := doRequest(r, http.MethodPost, "/v1/events", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestDashboardScoping(t *testing.T) {
	store := mock.NewStore()
	seedCompany(store, "c1", "u1", models.StatusPending, "Padaria")
	seedCompany(store, "c2", "u1", models.StatusActive, "Padaria")
	seedCompany(store, "c3", "u2", models.StatusActive, "Mercado")

	t.Run("Anonymous", func(t *testing.T) {
		r := newListingRouter(t, store, nil)
		w := doRequest(r, http.MethodGet, "/v1/dashboard", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 got %d", w.Code)
		}
	})

	t.Run("UserSeesOwnRowsInAnyStatus", func(t *testing.T) {
		r := newListingRouter(t, store, &models.Profile{ID: "u1", Role: models.RoleUser})
		w := doRequest(r, http.MethodGet, "/v1/dashboard", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", w.Code)
		}
		var resp struct {
			Companies []models.Company `json:"companies"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Companies) != 2 {
			t.Fatalf("expected 2 own companies, got %+v", resp.Companies)
		}
		for _, c := range resp.Companies {
			if c.UserID != "u1" {
				t.Fatalf("leaked foreign listing: %+v", c)
			}
		}
	})

	t.Run("AdminSeesEverything", func(t *testing.T) {
		r := newListingRouter(t, store, &models.Profile{ID: "a1", Role: models.RoleAdmin})
		w := doRequest(r, http.MethodGet, "/v1/dashboard", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", w.Code)
		}
		var resp struct {
			Companies []models.Company `json:"companies"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Companies) != 3 {
			t.Fatalf("expected all companies, got %+v", resp.Companies)
		}
	})
}
