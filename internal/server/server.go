package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/handler"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
}

// NewServer builds the reference server's single HTTP transport from the
// already-constructed handlers and transport configuration.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	var http *httpServer
	if handlers.HTTP != nil {
		http = newHTTPServer(handlers.HTTP.Init(), cfg)
	}

	return &server{httpServer: http}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		fmt.Printf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.httpServer.Shutdown()
		close(idleConnectionsClosed)
	}()

	fmt.Println("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	fmt.Println("server Shutdown gracefully")

	return nil
}
