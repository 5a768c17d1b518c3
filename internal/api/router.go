package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/venuebook/server/internal/api/handlers"
	"github.com/venuebook/server/internal/api/middleware"
	"github.com/venuebook/server/internal/config"
	"github.com/venuebook/server/internal/domain/events"
	"github.com/venuebook/server/internal/metrics"
	"github.com/venuebook/server/internal/storage/jsonfile"
)

// NewRouter wires the event store API: dev-token auth and rate limiting
// per route, correlation/logging/metrics/CORS around the whole mux.
func NewRouter(cfg config.Config, logger zerolog.Logger, store *jsonfile.Store, version string) http.Handler {
	service := events.NewService(store)
	eventsHandler := handlers.NewEventsHandler(service, cfg.Environment)

	devAuth := middleware.DevAuth(cfg.Environment)
	limitBody := middleware.RequestSize(middleware.DefaultMaxBodySize)
	rateLimit := middleware.RateLimit(cfg.RateLimit)
	limited := func(tier middleware.RateLimitTier, h http.Handler) http.Handler {
		return middleware.WithRateLimitTierHandler(tier)(rateLimit(h))
	}

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(store, version))
	mux.Handle("/metrics", metrics.Handler())

	mux.Handle("/api/v1/events", methodMux(map[string]http.Handler{
		http.MethodGet:  limited(middleware.TierPublic, devAuth(http.HandlerFunc(eventsHandler.List))),
		http.MethodPost: limited(middleware.TierWrite, devAuth(limitBody(http.HandlerFunc(eventsHandler.Create)))),
	}))
	mux.Handle("/api/v1/events/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    limited(middleware.TierPublic, devAuth(http.HandlerFunc(eventsHandler.Get))),
		http.MethodPatch:  limited(middleware.TierWrite, devAuth(limitBody(http.HandlerFunc(eventsHandler.Update)))),
		http.MethodDelete: limited(middleware.TierWrite, devAuth(http.HandlerFunc(eventsHandler.Delete))),
	}))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
