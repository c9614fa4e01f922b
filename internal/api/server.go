package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Ragavendra192/barani-report-system/internal/report"
)

// NewRouter mounts the report pages and the JSON endpoints. The rate limiter
// applies to everything except health checks and static assets.
func NewRouter(ctx context.Context, h *Handlers, limits RateLimitConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog)
	r.Use(chimw.Recoverer)

	r.Get(stylesheetPath, Stylesheet)
	r.Get("/healthz", h.Health)

	r.Group(func(r chi.Router) {
		if limits.RequestsPerSecond > 0 {
			r.Use(RateLimiter(ctx, limits))
		}

		r.Get("/", h.Home)
		for _, kind := range report.Kinds() {
			r.Get(kind.Path, h.Report(kind))
			r.Post(kind.Path, h.Report(kind))
		}
		r.Get("/api/dimensions/{kind}", h.Dimensions)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderHTML(w, http.StatusNotFound, errorPage("Not Found", "The requested page does not exist."))
	})

	return r
}
