// Package server serves the portfolio page over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wisdomalbert/portfolio/internal/config"
	"github.com/wisdomalbert/portfolio/internal/metrics"
	"github.com/wisdomalbert/portfolio/internal/sections"
	"github.com/wisdomalbert/portfolio/pkg/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server wires the gin engine to the page, metrics and logging.
type Server struct {
	cfg     *config.Config
	log     logger.Logger
	metrics *metrics.Manager
	engine  *gin.Engine
}

// New builds a Server. m may be nil when metrics are disabled.
func New(cfg *config.Config, log logger.Logger, m *metrics.Manager) *Server {
	gin.SetMode(cfg.GinMode)
	s := &Server{cfg: cfg, log: log, metrics: m, engine: gin.New()}
	s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), requestID(), requestLogger(s.log))
	if s.metrics != nil {
		r.Use(requestMetrics(s.metrics), visitorTracking(s.metrics, s.cfg.MetricsPath))
	}

	r.StaticFS("/static", http.FS(Assets()))

	r.GET("/", s.handleIndex)
	r.POST(sections.ContactFormPath, s.handleContact)
	r.GET("/healthz", s.handleHealth)

	if s.metrics != nil && s.cfg.MetricsEnabled {
		r.GET(s.cfg.MetricsPath, gin.WrapH(s.metrics.Handler()))
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "listening", logger.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info(shutdownCtx, "shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
