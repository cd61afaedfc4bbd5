package http

import (
	"net/http"

	"nginx-monitor/internal/publishers"
	"nginx-monitor/internal/schedulers"
	"nginx-monitor/internal/shared/loggers"
	"nginx-monitor/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(snapshotStore publishers.SnapshotStore, scheduler schedulers.RefreshScheduler, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	statsHandler := NewStatsHandler(snapshotStore)
	schedulerHandlers := NewSchedulerHandlers(scheduler)

	router.Get("/stats", errorHandlingAdapter(statsHandler))
	router.Route("/scheduler", func(r chi.Router) {
		r.Get("/", errorHandlingAdapter(schedulerHandlers.Status))
		r.Post("/refresh", errorHandlingAdapter(schedulerHandlers.RefreshNow))
		r.Post("/pause", errorHandlingAdapter(schedulerHandlers.Pause))
		r.Post("/resume", errorHandlingAdapter(schedulerHandlers.Resume))
		r.Put("/interval", errorHandlingAdapter(schedulerHandlers.SetInterval))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
