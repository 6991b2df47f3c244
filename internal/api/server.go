// Package api exposes the splitting pipeline over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/sheetsplit/internal/config"
	"github.com/dgallion1/sheetsplit/internal/pipeline"
	"github.com/dgallion1/sheetsplit/internal/suggest"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for sheetsplit.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	sugg         *suggest.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. sugg may be nil when
// the AI suggestion path is not configured.
func NewServer(orch *pipeline.Orchestrator, sugg *suggest.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		sugg:         sugg,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/split", s.handleSplit)
		r.Get("/api/split/{jobID}/status", s.handleSplitStatus)
		r.Get("/api/stats/llm", s.handleLLMStats)

		r.Get("/api/documents", s.handleListDocuments)
		r.Delete("/api/documents/{docStem}", s.handleDeleteDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
