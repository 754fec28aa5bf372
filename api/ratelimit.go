package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/centralbjl/directory/internal/config"
)

// RateLimiter applies a per-IP token bucket to the auth endpoints, so password
// guessing and signup floods are slowed down before they hit bcrypt.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh chan struct{}
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewRateLimiter(cfg config.RateLimit) *RateLimiter {
	rl := &RateLimiter{
		perSecond: rate.Limit(float64(cfg.PerMinute) / 60.0),
		burst:     cfg.Burst,
		limiters:  make(map[string]*ipLimiter),
		stopCh:    make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware rejects requests exceeding the caller's budget with 429.
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				writeJSON(w, errorResponse{Error: "too many requests"}, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.perSecond, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastAccess = time.Now()
	rl.mu.Unlock()

	return l.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for ip, l := range rl.limiters {
				if l.lastAccess.Before(cutoff) {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
