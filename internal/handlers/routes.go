package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vaughan-dsouza/bistro/internal/config"
	"github.com/vaughan-dsouza/bistro/internal/middleware"
	"github.com/vaughan-dsouza/bistro/internal/utils"
)

// NewRouter mounts every route of the API.
func NewRouter(h *Handler, verifier middleware.TokenVerifier, cfg *config.Config, log *slog.Logger, metrics *middleware.Metrics) http.Handler {
	limiter := middleware.NewRateLimiter(cfg.AuthRatePerMin)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Forwarded headers are client-controlled unless a proxy rewrites them, and the
	// rate limiter keys on RemoteAddr.
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLog(log))
	r.Use(metrics.Middleware)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.JSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", h.System.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Get("/menu", h.Menu.List)
		r.Group(func(r chi.Router) {
			r.Use(limiter.Limit)
			r.Post("/signup", h.Auth.SignUp)
			r.Post("/login", h.Auth.Login)
		})

		if cfg.Debug() {
			r.Get("/debug/tables", h.System.Tables)
		}

		// Protected
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(verifier, log))

			r.Post("/menu", h.Menu.Create)
			r.Post("/reservations", h.Reservations.Create)
			r.Get("/my-reservations", h.Reservations.Mine)
		})
	})

	return r
}
