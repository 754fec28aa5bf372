package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/centralbjl/directory/internal/metrics"
	"github.com/centralbjl/directory/pkg/models"
)

func TestCollector_ExposesRecordedMetrics(t *testing.T) {
	c := metrics.NewCollector()

	c.RecordHTTPRequest("GET", 200, 25*time.Millisecond)
	c.RecordHTTPRequest("POST", 403, 5*time.Millisecond)
	c.RecordListingCreated(models.KindCompany)
	c.RecordStatusTransition(models.KindCompany, models.StatusActive)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("metrics endpoint status = %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	out := string(body)

	for _, want := range []string{
		`centralbjl_http_requests_total{method="GET",status_code="200"} 1`,
		`centralbjl_http_requests_total{method="POST",status_code="403"} 1`,
		`centralbjl_listings_created_total{kind="company"} 1`,
		`centralbjl_status_transitions_total{kind="company",status="active"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("metrics output missing %q\n%s", want, out)
		}
	}
}

func TestNewCollector_IsolatedRegistries(t *testing.T) {
	// Two collectors must not clash on registration.
	a := metrics.NewCollector()
	b := metrics.NewCollector()
	a.RecordListingCreated(models.KindJob)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)
	if strings.Contains(rec.Body.String(), `kind="job"`) {
		t.Fatalf("collectors share state")
	}
}
