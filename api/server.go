/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, the middleware stack and the route table.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, echoed in access logs
  2. hlog:       zerolog logger in the request context plus one access line
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests from report dashboards

ROUTES:
  POST /api/reports          Enqueue a report task
  GET  /api/report-types     Accepted report types
  POST /api/admin/dataset    Regenerate the synthetic dataset (when enabled)
  GET  /health               Liveness
  GET  /health/queue         Queue reachability

  POST /gerar-relatorio and GET /health/redis are kept as aliases for
  existing clients.

SECURITY NOTE:
  No authentication. The admin route answers 404 unless a generator is
  configured (ADMIN_GENERATE_ENABLED).

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(h.log.Zerolog()))
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/health/queue", h.QueueHealth)
	r.Get("/health/redis", h.QueueHealth)
	r.Post("/gerar-relatorio", h.RequestReport)

	r.Route("/api", func(r chi.Router) {
		r.Post("/reports", h.RequestReport)
		r.Get("/report-types", h.ListReportTypes)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/dataset", h.RegenerateDataset)
		})
	})

	return r
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
