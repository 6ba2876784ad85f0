package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/healthz", h.getHealth)
	})

	// the generated artifact gets its own handler so caching can be disabled
	router.Get(envScriptRoute, h.getEnvScript)

	// everything else is the static SPA output
	router.Get("/*", h.serveStatic)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
