package router

import (
	"net/http"

	"tripboard-service/internal/interface/handler"
	"tripboard-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Options configures the HTTP router
type Options struct {
	AllowedOrigins []string
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
	Logger   logger.Logger
}

// NewRouter mounts every API route on a chi router wrapped with CORS
func NewRouter(h *handler.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(handler.RequestLogger(opts.Logger))
	r.Use(chiMiddleware.Recoverer)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Session)

		// Public routes
		r.Post("/create-trip", h.CreateTrip)
		r.Get("/countries", h.ListCountries)
		r.Get("/auth/oauth/{provider}", h.StartOAuth)
		r.Get("/auth/oauth/{provider}/callback", h.OAuthCallback)
		r.Post("/auth/logout", h.Logout)

		r.With(h.RequireUser).Get("/auth/me", h.CurrentUser)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/trips", h.ListTrips)
			r.Get("/trips/{id}", h.GetTrip)
			r.Get("/users", h.ListUsers)
			r.Post("/countries/invalidate", h.InvalidateCountries)
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
