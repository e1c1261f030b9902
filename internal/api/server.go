package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/NavindyaD/cv-chat/internal/config"
	"github.com/NavindyaD/cv-chat/internal/mailer"
	"github.com/NavindyaD/cv-chat/internal/qa"
	"github.com/NavindyaD/cv-chat/internal/session"
)

// Server is the HTTP API server for cv-chat.
type Server struct {
	router   chi.Router
	sessions *session.Store
	sender   mailer.Sender
	stats    *qa.QueryStats
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Store, sender mailer.Sender, stats *qa.QueryStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions: sessions,
		sender:   sender,
		stats:    stats,
		log:      log,
		cfg:      cfg,
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

	// Authenticated endpoints. With no API key configured the group is
	// open, which is the expected local single-user setup.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/cv/load", s.handleLoadCV)
		r.Post("/api/chat", s.handleChat)
		r.Post("/api/email", s.handleEmail)
		r.Get("/api/sessions/{sessionID}", s.handleGetSession)
		r.Get("/api/stats/queries", s.handleQueryStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
