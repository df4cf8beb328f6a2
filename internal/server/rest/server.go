// Package rest serves the users API over HTTP using echo.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/radar/internal/common"
	"github.com/dmitrijs2005/radar/internal/logging"
	"github.com/dmitrijs2005/radar/internal/server/config"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	address         string
	echo            *echo.Echo
	users           UserGateway
	logger          logging.Logger
	strictUpdate    bool
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, users UserGateway) *Server {
	s := &Server{
		address:         cfg.HTTPAddr,
		users:           users,
		logger:          l.With("module", "http_server"),
		strictUpdate:    cfg.StrictUpdate,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	RegisterErrorHandler(e, s.logger)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: common.RequestIDHeaderName,
	}))
	e.Use(s.requestLogger())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			s.logger.Error(c.Request().Context(), "panic recovered", "err", err, "stack", string(stack))
			return err
		},
	}))
	e.Use(middleware.BodyLimit("1M"))

	s.echo = e
	s.registerRoutes()

	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				args = append(args, "err", v.Error)
			}
			s.logger.Info(c.Request().Context(), "request", args...)
			return nil
		},
	})
}
