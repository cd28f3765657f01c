package inbound_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/config"
)

type Server struct {
	server *http.Server
	log    ports.Logger
}

func NewServer(cfg config.HTTPServer, handler http.Handler, log ports.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log: log,
	}
}

// Run blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
