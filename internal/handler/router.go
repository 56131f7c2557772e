package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formgate/pkg/ratelimit"
)

// Router assembles the middleware chain and routes. Both form endpoints
// share the provided limiter, keyed by client IP.
func (h *Handler) Router(limiter ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(corsMiddleware(h.cfg.AllowedOrigin))
	r.Use(maxBodySize(h.cfg.MaxBodySize))

	limited := ratelimit.Middleware(limiter, ratelimit.ByClientIP(),
		ratelimit.WithOnLimitReached(func(w http.ResponseWriter, r *http.Request, _ *ratelimit.Result) {
			writeJSON(w, http.StatusTooManyRequests, response{
				Success: false,
				Message: "Too many emails sent from this IP, please try again later.",
			})
		}),
	)

	r.Group(func(r chi.Router) {
		r.Use(limited)
		r.Post("/api/contact", h.SubmitContact)
		r.Post("/api/job-application", h.SubmitJobApplication)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
