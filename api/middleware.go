package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/centralbjl/directory/internal/metrics"
	"github.com/centralbjl/directory/internal/profile"
	"github.com/centralbjl/directory/pkg/models"
)

type ctxKey string

const ctxProfile ctxKey = "profile"

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// ProfileFromContext returns the authenticated caller's profile, or nil for
// anonymous requests.
func ProfileFromContext(ctx context.Context) *models.Profile {
	p, _ := ctx.Value(ctxProfile).(*models.Profile)
	return p
}

// ContextWithProfile returns ctx carrying p as the authenticated caller.
func ContextWithProfile(ctx context.Context, p *models.Profile) context.Context {
	return context.WithValue(ctx, ctxProfile, p)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records request counts and latency on the collector.
func MetricsMiddleware(collector *metrics.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)
			collector.RecordHTTPRequest(r.Method, sr.status, time.Since(start))
		})
	}
}

// AuthMiddleware validates the bearer token and resolves the caller's profile
// into the request context. Requests without a valid token are rejected.
// Profile resolution goes through EnsureProfile, so a valid identity whose
// profile row is missing gets one created with defaults.
func AuthMiddleware(secret string, profiles *profile.Service) mux.MiddlewareFunc {
	return authMiddleware(secret, profiles, true)
}

// OptionalAuthMiddleware resolves the profile when a token is present but lets
// anonymous requests through. Used on public detail pages where owners and
// admins may see non-active listings.
func OptionalAuthMiddleware(secret string, profiles *profile.Service) mux.MiddlewareFunc {
	return authMiddleware(secret, profiles, false)
}

func authMiddleware(secret string, profiles *profile.Service, required bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if required {
					writeError(w, models.ErrUnauthenticated)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			var tokenString string
			if _, err := fmt.Sscanf(authHeader, "Bearer %s", &tokenString); err != nil || tokenString == "" {
				writeError(w, models.ErrUnauthenticated)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}

				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				writeError(w, models.ErrUnauthenticated)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, models.ErrUnauthenticated)
				return
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				writeError(w, models.ErrUnauthenticated)
				return
			}

			p, err := profiles.EnsureProfile(r.Context(), sub)
			if err != nil {
				logger.Error("resolve profile", slog.String("id", sub), slog.Any("err", err))
				writeError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithProfile(r.Context(), p)))
		})
	}
}
