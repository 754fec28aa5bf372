package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/centralbjl/directory/api"
	dbfs "github.com/centralbjl/directory/db"
	"github.com/centralbjl/directory/internal/config"
	dbpkg "github.com/centralbjl/directory/internal/db"
)

// TestSetupRoutes wires the full stack against an in-memory database and
// checks that the fixed routes are not shadowed by the collection wildcards.
func TestSetupRoutes(t *testing.T) {
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, err := dbpkg.New(ctx, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Addr:          ":0",
		JWTSecret:     "testsecret",
		TokenDuration: time.Hour,
		DatabasePath:  dsn,
		RateLimit:     config.RateLimit{PerMinute: 600, Burst: 100},
	}
	router, limiter, err := api.SetupRoutes(cfg, "test", "now", d, nil)
	if err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	t.Cleanup(limiter.Stop)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Health", http.MethodGet, "/health", http.StatusOK},
		{"Version", http.MethodGet, "/version", http.StatusOK},
		{"Metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"PublicCompanies", http.MethodGet, "/v1/companies", http.StatusOK},
		{"PublicEvents", http.MethodGet, "/v1/events", http.StatusOK},
		{"Categories", http.MethodGet, "/v1/categories", http.StatusOK},
		{"Neighborhoods", http.MethodGet, "/v1/neighborhoods", http.StatusOK},
		{"DashboardNeedsAuth", http.MethodGet, "/v1/dashboard", http.StatusUnauthorized},
		{"PendingQueueNeedsAuth", http.MethodGet, "/v1/admin/pending", http.StatusUnauthorized},
		{"CreateNeedsAuth", http.MethodPost, "/v1/companies", http.StatusUnauthorized},
		{"SetStatusNeedsAuth", http.MethodPost, "/v1/listings/companies/x/status", http.StatusUnauthorized},
		{"UnknownCollection", http.MethodGet, "/v1/gadgets", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("%s %s: expected %d got %d body=%s", tt.method, tt.path, tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
