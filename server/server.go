// Package server assembles the HTTP service: the echo instance, the
// middleware chain, the resolution pipeline, and the serve/shutdown
// lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/PBLBot/scheduling-api/internal/profile"
	"github.com/PBLBot/scheduling-api/plugin/nlp/dateparse"
	apierrors "github.com/PBLBot/scheduling-api/server/internal/errors"
	"github.com/PBLBot/scheduling-api/server/internal/observability"
	"github.com/PBLBot/scheduling-api/server/middleware"
	apiv1 "github.com/PBLBot/scheduling-api/server/router/api/v1"
	"github.com/PBLBot/scheduling-api/server/service/resolve"
	"github.com/PBLBot/scheduling-api/server/timezone"
)

const (
	rateLimitPerSecond = 10
	rateLimitBurst     = 20
	shutdownTimeout    = 10 * time.Second
)

type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
}

func NewServer(profile *profile.Profile) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Profile:    profile,
		echoServer: e,
	}

	resolver, err := resolve.NewService(
		resolve.DefaultConfig(),
		timezone.NewDetector(timezone.DefaultAliases()),
		dateparse.NewWhenParser(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolve service")
	}

	e.HTTPErrorHandler = s.errorHandler
	e.Use(echomw.CORS())
	e.Use(requestLogger())
	e.Use(middleware.NewRateLimiter(rateLimitPerSecond, rateLimitBurst).Middleware())

	apiv1.NewAPIV1Service(profile, resolver, observability.NewMetrics()).Register(e)

	return s, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server listening",
			slog.String("address", address),
			slog.String("mode", s.Profile.Mode),
			slog.String("version", s.Profile.Version))
		if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown drains in-flight requests, bounded by shutdownTimeout.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "failed to shutdown server")
	}
	slog.Info("server stopped")
	return nil
}

// errorHandler is the top-level catcher. Input-shape outcomes never reach it
// (the parse handler answers those with 200 JSON), so anything arriving here
// is a routing error, a rate-limit rejection, or an unexpected failure.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if httpErr, ok := err.(*echo.HTTPError); ok {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		if jerr := c.JSON(httpErr.Code, map[string]string{"error": message}); jerr != nil {
			slog.Error("failed to write error response", slog.String("error", jerr.Error()))
		}
		return
	}

	code := apierrors.GetCodeFromError(err, apierrors.ErrCodeInternal)
	status := apierrors.HTTPStatus(code)

	var message string
	switch {
	case status != http.StatusInternalServerError:
		// Client-addressable errors carry their own safe message.
		if svcErr, ok := err.(*apierrors.ServiceError); ok {
			message = svcErr.Message
		} else {
			message = http.StatusText(status)
		}
	case s.Profile.IsDev():
		message = err.Error()
	default:
		message = "internal server error"
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String(observability.LogFieldPath, c.Request().URL.Path),
			slog.String(observability.LogFieldErrorCode, string(code)),
			slog.String("error", err.Error()))
	}

	if jerr := c.JSON(status, map[string]string{"error": message, "code": string(code)}); jerr != nil {
		slog.Error("failed to write error response", slog.String("error", jerr.Error()))
	}
}

// requestLogger attaches the request-scoped logger to the request context and
// emits one completion line per request. A client-supplied X-Request-ID is
// kept; otherwise one is generated.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var reqCtx *observability.RequestContext
			if inbound := req.Header.Get(echo.HeaderXRequestID); inbound != "" {
				reqCtx = observability.NewRequestContextWithID(slog.Default(), inbound, req.Method, req.URL.Path)
			} else {
				reqCtx = observability.NewRequestContext(slog.Default(), req.Method, req.URL.Path)
			}
			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)
			c.SetRequest(req.WithContext(observability.WithRequestContext(req.Context(), reqCtx)))

			err := next(c)

			attrs := []slog.Attr{
				slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()),
			}
			if outcome, ok := c.Get(observability.LogFieldOutcome).(string); ok {
				attrs = append(attrs, slog.String(observability.LogFieldOutcome, outcome))
			}
			if strategy, ok := c.Get(observability.LogFieldStrategy).(string); ok {
				attrs = append(attrs, slog.String(observability.LogFieldStrategy, strategy))
			}

			if err != nil {
				// Status is not set yet; the error handler decides it.
				reqCtx.Warn("request failed", attrs...)
				return err
			}
			attrs = append(attrs, slog.Int("status", c.Response().Status))
			reqCtx.Info("request completed", attrs...)
			return nil
		}
	}
}
