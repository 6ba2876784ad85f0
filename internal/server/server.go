package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wires the handler into an HTTP server listening on the
// configured address.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until a stop signal arrives, then shuts down gracefully.
func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")

	return nil
}
