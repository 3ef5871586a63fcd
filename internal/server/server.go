package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/handler"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
)

// server owns the transports of the identity provider. Today only HTTP
// exists, the struct keeps room for others.
type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, log *logger.Logger) (Server, error) {
	log.Info().Msg("creating new server...")

	s := &server{logger: log}
	if cfg.HTTPAddress != "" {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, log)
	}
	if s.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run launches the HTTP transport and blocks until SIGTERM, SIGINT or
// SIGQUIT triggers the graceful shutdown.
func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	stopped := make(chan struct{})
	go func() {
		<-ctx.Done() // ждём сигнал остановки
		s.Shutdown()
		close(stopped)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-stopped
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
