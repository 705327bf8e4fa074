/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. RealIP:     Client IP behind proxies
  3. Logger:     Structured request logging (zap)
  4. Recoverer:  Panic recovery (500 instead of crash)
  5. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/calculators/*    The seven calculators
  /api/reference/*      Active rate table and holiday calendar
  /api/history          Recent calculation records
  /api/health           Liveness probe

SECURITY NOTE:
  No authentication middleware. Calculators are stateless and read-only
  with respect to configuration; the only write path is the append-only
  history store.

SEE ALSO:
  - handlers.go: Handler implementations
  - middleware.go: The zap request logger
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Calculator routes
		r.Route("/calculators", func(r chi.Router) {
			r.Post("/escritura", h.CalculateEscritura)
			r.Post("/honorarios", h.CalculateHonorarios)
			r.Post("/cedular", h.CalculateCedular)
			r.Post("/ajustes", h.CalculateAjustes)
			r.Post("/cac", h.CalculateCAC)

			r.Route("/plazos", func(r chi.Router) {
				r.Post("/days-between", h.CalculateDaysBetween)
				r.Post("/due-date", h.CalculateDueDate)
			})
		})

		// Reference routes
		r.Route("/reference", func(r chi.Router) {
			r.Get("/rates", h.GetRates)
			r.Get("/holidays", h.GetHolidays)
		})

		// History routes
		r.Get("/history", h.ListHistory)

		r.Get("/health", h.Health)
	})

	return r
}
