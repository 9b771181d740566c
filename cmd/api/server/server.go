package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	ginhandler "users-api/internal/adapter/gin/handler"
	"users-api/internal/adapter/gin/middleware"
	"users-api/internal/config"

	"go.uber.org/zap"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, handler *ginhandler.UserHandler, rateLimiter *middleware.RateLimiter) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupGinServer(handler, rateLimiter, cfg.App.HTTPAddr, cfg.Logger.ServiceName, l),
	}
}

// Start binds the listen address and serves until Shutdown is called.
// A clean shutdown returns nil.
func (s *Server) Start() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", s.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.HTTP.Addr, err)
	}

	return s.Serve(lis)
}

// Serve serves HTTP on an existing listener.
func (s *Server) Serve(lis net.Listener) error {
	s.Logger.Info("HTTP server running", zap.String("address", lis.Addr().String()))

	if err := s.HTTP.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
