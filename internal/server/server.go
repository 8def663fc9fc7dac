package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"GoNLP/internal/config"
	"GoNLP/internal/logging"
	"GoNLP/internal/module"
)

// Server wraps an http.Server hosting the module API.
type Server struct {
	cfg    config.ServerConfig
	srv    *http.Server
	logger *zap.Logger
}

// New creates a Server for the registry using cfg.
func New(registry *module.Registry, cfg config.Config, version string, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger)
	cfg = cfg.WithLimits()
	handler := NewHandler(registry, cfg, version, logger)

	return &Server{
		cfg:    cfg.Server,
		logger: logger,
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler.Routes(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
		return s.srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
