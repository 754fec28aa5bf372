package api

import (
	"log/slog"

	"github.com/gorilla/mux"

	"github.com/centralbjl/directory/internal/config"
	"github.com/centralbjl/directory/internal/db"
	"github.com/centralbjl/directory/internal/metrics"
	"github.com/centralbjl/directory/internal/moderation"
	"github.com/centralbjl/directory/internal/profile"
	"github.com/centralbjl/directory/internal/repository/sqlite"
	"github.com/centralbjl/directory/internal/validate"
)

// SetupRoutes wires repositories, services and handlers into the router. The
// returned rate limiter must be stopped on shutdown.
func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB, logger *slog.Logger) (*mux.Router, *RateLimiter, error) {
	SetLogger(logger)

	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	collector := metrics.NewCollector()
	r.Use(MetricsMiddleware(collector))

	// Repository and services
	repo := sqlite.New(database, logger)
	profiles := profile.NewService(repo, logger)
	moderator := moderation.NewService(repo, collector, logger)

	validator, err := validate.New()
	if err != nil {
		return nil, nil, err
	}

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, profiles, cfg.JWTSecret, cfg.TokenDuration, cfg.RequireConfirmation)
	listingHandler := NewListingHandler(repo, validator, collector)
	moderationHandler := NewModerationHandler(moderator, repo, repo)
	lookupHandler := NewLookupHandler(repo)

	limiter := NewRateLimiter(cfg.RateLimit)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.Handle("/metrics", collector.Handler()).Methods("GET")

	// Auth endpoints, rate limited per client IP
	auth := r.PathPrefix("/v1/auth").Subrouter()
	auth.Use(limiter.Middleware())
	auth.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	auth.HandleFunc("/signin", authHandler.Signin).Methods("POST")
	auth.HandleFunc("/confirm", authHandler.Confirm).Methods("POST")

	// Public listing pages. Detail pages take an optional token so owners and
	// admins can open their own non-active listings. The kind variable is
	// pinned to the known collection segments so it cannot shadow other routes.
	public := r.PathPrefix("/v1").Subrouter()
	public.Use(OptionalAuthMiddleware(cfg.JWTSecret, profiles))
	public.HandleFunc("/categories", lookupHandler.Categories).Methods("GET")
	public.HandleFunc("/neighborhoods", lookupHandler.Neighborhoods).Methods("GET")
	public.HandleFunc("/{kind:"+kindPattern+"}", listingHandler.List).Methods("GET")
	public.HandleFunc("/{kind:"+kindPattern+"}/{id}", listingHandler.Get).Methods("GET")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(AuthMiddleware(cfg.JWTSecret, profiles))

	apiV1.HandleFunc("/auth/signout", authHandler.Signout).Methods("POST")
	apiV1.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	apiV1.HandleFunc("/dashboard", listingHandler.Dashboard).Methods("GET")
	apiV1.HandleFunc("/admin/pending", moderationHandler.Pending).Methods("GET")
	apiV1.HandleFunc("/admin/users", moderationHandler.Users).Methods("GET")

	apiV1.HandleFunc("/{kind:"+kindPattern+"}", listingHandler.Create).Methods("POST")
	apiV1.HandleFunc("/listings/{kind:"+kindPattern+"}/{id}/status", moderationHandler.SetStatus).Methods("POST")
	apiV1.HandleFunc("/listings/{kind:"+kindPattern+"}/{id}", moderationHandler.Delete).Methods("DELETE")

	return r, limiter, nil
}
