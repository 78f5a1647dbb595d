package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	_ "github.com/blaisecz/better-rest/docs"
	"github.com/blaisecz/better-rest/internal/api/handler"
	"github.com/blaisecz/better-rest/internal/api/middleware"
	"github.com/blaisecz/better-rest/pkg/problem"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	bedtimeHandler *handler.BedtimeHandler
	logger         *slog.Logger
}

func NewRouter(bedtimeHandler *handler.BedtimeHandler, logger *slog.Logger) *Router {
	return &Router{
		bedtimeHandler: bedtimeHandler,
		logger:         logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.NotFound("No route for " + r.URL.Path).Write(w)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/bedtime", func(r chi.Router) {
			r.Post("/", rt.bedtimeHandler.Calculate)
			r.Get("/", rt.bedtimeHandler.CalculateQuery)
			r.Get("/form", rt.bedtimeHandler.Form)
		})
	})

	return r
}
