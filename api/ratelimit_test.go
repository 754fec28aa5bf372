package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centralbjl/directory/api"
	"github.com/centralbjl/directory/internal/config"
)

func TestRateLimiter(t *testing.T) {
	rl := api.NewRateLimiter(config.RateLimit{PerMinute: 60, Burst: 3})
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := rl.Middleware()(next)

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	// the burst is available immediately, then the bucket runs dry
	for i := 0; i < 3; i++ {
		if got := send("10.0.0.1:1234"); got != http.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, got)
		}
	}
	if got := send("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", got)
	}

	// another client has its own bucket
	if got := send("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("second client: expected 200 got %d", got)
	}
}
