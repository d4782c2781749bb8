package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/ymurata/motivation-tracker/docs"
	"github.com/ymurata/motivation-tracker/internal/api/handler"
	"github.com/ymurata/motivation-tracker/internal/api/middleware"
	"github.com/ymurata/motivation-tracker/internal/auth"
)

type Router struct {
	tokens          *auth.TokenManager
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	questionHandler *handler.QuestionHandler
	recordHandler   *handler.RecordHandler
	statsHandler    *handler.StatsHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	tokens *auth.TokenManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	questionHandler *handler.QuestionHandler,
	recordHandler *handler.RecordHandler,
	statsHandler *handler.StatsHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		tokens:          tokens,
		authHandler:     authHandler,
		userHandler:     userHandler,
		questionHandler: questionHandler,
		recordHandler:   recordHandler,
		statsHandler:    statsHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

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
		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
		})

		// Everything else requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(rt.tokens))

			r.Get("/questions", rt.questionHandler.List)

			r.Route("/users/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Route("/records", func(r chi.Router) {
					r.Get("/", rt.recordHandler.List)
					r.Get("/stats", rt.statsHandler.GetStats)
					r.Get("/chart", rt.statsHandler.GetChart)
					r.Put("/{date}", rt.recordHandler.SaveDay)
					r.Get("/{date}", rt.recordHandler.GetDay)
				})

				r.Get("/insights", rt.insightsHandler.GetInsights)
			})
		})
	})

	return r
}
