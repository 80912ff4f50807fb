// Package api implements the Pedigraph HTTP API.
//
// The API is a thin shell around the pipeline: it accepts raw GEDCOM
// text, runs parse and layout, stores the resulting graph under a
// server-issued id, and serves the graph and its coordinates back as
// JSON. No rendering happens here.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pedigraph/pedigraph/pkg/buildinfo"
	"github.com/pedigraph/pedigraph/pkg/pipeline"
)

// Server is the HTTP API server for Pedigraph.
type Server struct {
	router   chi.Router
	runner   *pipeline.Runner
	store    *GraphStore
	log      *log.Logger
	defaults pipeline.Options
}

// NewServer creates and configures the HTTP server. The defaults
// supply server-wide pipeline settings (typically layout spacing from
// config); per-request query parameters still override them.
func NewServer(runner *pipeline.Runner, store *GraphStore, logger *log.Logger, defaults pipeline.Options) *Server {
	if store == nil {
		store = NewGraphStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		store:    store,
		log:      logger,
		defaults: defaults,
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

	r.Get("/health", s.handleHealth)

	r.Post("/api/parse", s.handleParse)
	r.Get("/api/graphs/{graphID}", s.handleGetGraph)
	r.Get("/api/graphs/{graphID}/layout", s.handleGetLayout)
	r.Delete("/api/graphs/{graphID}", s.handleDeleteGraph)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}
