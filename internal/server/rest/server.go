// Package rest exposes the agenda services over HTTP with Fiber.
package rest

import (
	"context"
	"errors"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/logging"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/services"
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
)

// Services groups the use cases the handlers call.
type Services struct {
	Accounts   *services.AccountService
	Categories *services.CategoryService
	Contacts   *services.ContactService
	Auth       *services.AuthService
	Exports    *services.ExportService

	// Ping reports storage health for GET /health. Nil means always healthy.
	Ping func(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	svc             Services
	app             *fiber.App
}

func NewHTTPServer(address string, l logging.Logger, svc Services, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
		svc:             svc,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "agenda",
		ErrorHandler: s.handleError,
	})

	s.app.Use(s.logRequests)
	s.app.Use(recoverer.New())
	s.registerRoutes()

	return s
}

// App returns the underlying Fiber application.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.app.Listen(s.address, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	if err := s.app.ShutdownWithTimeout(s.shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return <-errCh
}
