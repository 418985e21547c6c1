package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/ignite/newsletter/internal/config"
	"github.com/ignite/newsletter/internal/pkg/metrics"
	"github.com/ignite/newsletter/internal/service/subscription"
)

// Dependencies are the collaborators the HTTP layer calls into.
type Dependencies struct {
	Subscriptions *subscription.Service
	Metrics       *metrics.Manager
	// DB is pinged by the readiness probe. Nil means no database is wired.
	DB Pinger
}

// Server represents the API server
type Server struct {
	config  config.ApplicationConfig
	handler http.Handler
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(cfg config.ApplicationConfig, deps Dependencies) *Server {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewManager()
	}
	handler := SetupRoutes(cfg, deps)
	return &Server{
		config:  cfg,
		handler: handler,
		server: &http.Server{
			Handler:           handler,
			ReadTimeout:       30 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// ListenAndServe binds the configured address and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.server.Serve(ln)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
