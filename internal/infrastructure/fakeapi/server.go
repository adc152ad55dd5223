// Package fakeapi is an in-memory stand-in for the remote ranking service.
// It speaks the same envelope format and backs the client round-trip tests.
package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-ranking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

type Server struct {
	countries    *memory.CountryRepository
	competitions *memory.CompetitionRepository
	matches      *memory.MatchRepository
	validate     *validator.Validate
	logger       *logging.Logger
}

// NewSeeded returns a server preloaded with the memory seed data.
func NewSeeded(logger *logging.Logger) *Server {
	return New(
		memory.NewCountryRepository(memory.SeedCountries()),
		memory.NewCompetitionRepository(memory.SeedCompetitions()),
		memory.NewMatchRepository(memory.SeedMatches()),
		logger,
	)
}

func New(
	countries *memory.CountryRepository,
	competitions *memory.CompetitionRepository,
	matches *memory.MatchRepository,
	logger *logging.Logger,
) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{
		countries:    countries,
		competitions: competitions,
		matches:      matches,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       logger,
	}
}

// Router mounts every endpoint under /api.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestTracing)
	r.Use(RequestLogging(s.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.Health)

		r.Route("/countries", func(r chi.Router) {
			r.Get("/", s.ListCountries)
			r.Post("/", s.CreateCountry)
			r.Get("/rankings/world", s.WorldRankings)
			r.Get("/rankings/confederation/{confederation}", s.ConfederationRankings)
			r.Get("/compare/{id1}/{id2}", s.CompareCountries)
			r.Get("/{id}", s.GetCountry)
			r.Put("/{id}", s.UpdateCountry)
			r.Delete("/{id}", s.DeleteCountry)
			r.Get("/{id}/ranking-history", s.RankingHistory)
		})

		r.Route("/competitions", func(r chi.Router) {
			r.Get("/", s.ListCompetitions)
			r.Post("/", s.CreateCompetition)
			r.Get("/{id}", s.GetCompetition)
			r.Put("/{id}", s.UpdateCompetition)
			r.Delete("/{id}", s.DeleteCompetition)
			r.Post("/{id}/participants", s.AddParticipants)
			r.Delete("/{id}/participants/{countryID}", s.RemoveParticipant)
			r.Get("/{id}/standings", s.Standings)
			r.Get("/{id}/statistics", s.CompetitionStatistics)
			r.Get("/{id}/matches", s.CompetitionMatches)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", s.ListMatches)
			r.Post("/", s.CreateMatch)
			r.Get("/upcoming", s.UpcomingMatches)
			r.Get("/recent", s.RecentMatches)
			r.Get("/head-to-head/{id1}/{id2}", s.HeadToHead)
			r.Get("/{id}", s.GetMatch)
			r.Delete("/{id}", s.DeleteMatch)
			r.Post("/{id}/simulate", s.SimulateMatch)
			r.Put("/{id}/result", s.UpdateMatchResult)
			r.Get("/{id}/events", s.MatchEvents)
			r.Post("/{id}/events", s.AddMatchEvent)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	return r
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "OK",
		"message":  "Football ranking API is running",
		"database": "memory",
	})
}
