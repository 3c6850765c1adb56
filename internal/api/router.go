package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/eventdesk/server/internal/api/handlers"
	"github.com/eventdesk/server/internal/api/middleware"
	"github.com/eventdesk/server/internal/api/respond"
	"github.com/eventdesk/server/internal/domain/resource"
	"github.com/eventdesk/server/internal/metrics"
	"github.com/eventdesk/server/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires the route table. The repository and database handle are
// constructed by the caller and injected; the router holds no connection
// state of its own.
func NewRouter(repo storage.Repository, db handlers.Pinger, logger zerolog.Logger) http.Handler {
	eventsHandler := handlers.NewResourceHandler(resource.NewService(repo.Events()), resource.Events)
	attendeesHandler := handlers.NewResourceHandler(resource.NewService(repo.Attendees()), resource.Attendees)
	organizersHandler := handlers.NewResourceHandler(resource.NewService(repo.Organizers()), resource.Organizers)
	statsHandler := handlers.NewStatsHandler(repo.Events(), repo.Attendees())

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(db))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	registerResource(mux, eventsHandler, true)
	registerResource(mux, attendeesHandler, false)
	registerResource(mux, organizersHandler, false)

	mux.Handle("/event-stats", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(statsHandler.Get),
	}))

	var handler http.Handler = mux
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

// registerResource mounts the CRUD routes for one collection. Only events
// carry a PUT route; the other collections are mutated through PATCH alone.
func registerResource[T resource.Record[T]](mux *http.ServeMux, h *handlers.ResourceHandler[T], withReplace bool) {
	base := "/api/" + h.Kind().Plural
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
	mux.HandleFunc("PATCH "+base+"/{id}", h.Patch)
	if withReplace {
		mux.HandleFunc("PUT "+base+"/{id}", h.Replace)
	}
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
}

func methodMux(routes map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := routes[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(routes))
		respond.Message(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

func allowedMethods(routes map[string]http.Handler) string {
	methods := make([]string, 0, len(routes))
	for method := range routes {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
