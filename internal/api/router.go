package api

import (
	"net/http"

	"github.com/BlakeDanielson/celeb-draft/internal/api/handlers"
	"github.com/BlakeDanielson/celeb-draft/internal/api/middleware"
	"github.com/BlakeDanielson/celeb-draft/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	}).Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	leagueHandler := handlers.NewLeagueHandler(services.League, services.Session, logger)
	celebrityHandler := handlers.NewCelebrityHandler(services.Celebrity)
	draftHandler := handlers.NewDraftHandler(services.Draft, logger)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/leagues", func(r chi.Router) {
			r.Post("/", leagueHandler.Create)
			r.Get("/{idOrToken}", leagueHandler.Get)
			r.Post("/{token}/join", leagueHandler.Join)

			r.Get("/{leagueId}/celebrities", celebrityHandler.List)
			r.Get("/{leagueId}/draft-state", draftHandler.GetDraftState)
			r.Get("/{leagueId}/recap", draftHandler.GetRecap)

			// Join-gated routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Session(services.Session))
				r.Post("/{leagueId}/celebrities", celebrityHandler.Add)
				r.Post("/{leagueId}/start-draft", leagueHandler.StartDraft)
				r.Post("/{leagueId}/picks", draftHandler.SubmitPick)
			})
		})
	})

	return r
}
