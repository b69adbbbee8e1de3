package api

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Server runs the calculator API on its own listener.
type Server struct {
	app    *fiber.App
	addr   string
	logger *slog.Logger
}

// NewServer wraps a Fiber app for the given listen address.
func NewServer(addr string, app *fiber.App, logger *slog.Logger) *Server {
	return &Server{app: app, addr: addr, logger: logger}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("api server starting", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
