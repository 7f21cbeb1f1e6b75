package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the gateway's routes
func (h *Handler) NewRouter(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(h.RequestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/site-config", h.GetSiteConfig)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/session", h.CreateSession)
			r.Get("/session", h.GetSession)
			r.Delete("/session", h.DeleteSession)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.ListTournaments)
			r.Get("/latest", h.GetLatestTournament)
			r.Get("/{id}", h.GetTournament)
			r.Get("/{id}/standings", h.GetTournamentStandings)
			r.Get("/{id}/teams", h.GetTournamentTeams)
		})
		r.Get("/owal/standings", h.GetOwalStandings)

		r.Route("/encounters", func(r chi.Router) {
			r.Get("/", h.ListEncounters)
			r.Get("/{id}", h.GetEncounter)
		})
		r.Get("/matches", h.ListMatches)
		r.Get("/matches/{id}", h.GetMatch)

		r.Route("/users", func(r chi.Router) {
			r.Get("/search", h.SearchUsers)
			r.Get("/{name}", h.GetUser)
			r.Get("/{name}/tournaments/{id}", h.GetUserTournament)
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", h.ListAchievements)
			r.Get("/{id}", h.GetAchievement)
		})

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/", h.GetStatisticsHistory)
			r.Get("/overall", h.GetOverallStatistics)
			r.Get("/leaderboards", h.GetLeaderboards)
			r.Get("/hero-playtime", h.GetHeroPlaytime)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/algorithms", h.GetAnalyticsAlgorithms)
			r.Get("/{id}", h.GetAnalytics)
			r.Post("/{id}/shift", h.ChangeShift)
		})
	})

	return r
}
