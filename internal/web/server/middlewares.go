package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistapi/internal/config"
	"github.com/thomiceli/gistapi/internal/web/context"
	"github.com/thomiceli/gistapi/internal/web/handlers/metrics"
)

func (s *Server) useCustomContext() {
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := context.NewContext(c)
			return next(cc)
		}
	})
}

func (s *Server) registerMiddlewares() {
	s.echo.Pre(middleware.RemoveTrailingSlash())
	s.echo.Pre(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Pre(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	s.echo.Pre(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI: true, LogStatus: true, LogMethod: true, LogRequestID: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().Str("uri", v.URI).Int("status", v.Status).Str("method", v.Method).
				Str("ip", ctx.RealIP()).TimeDiff("duration", time.Now(), v.StartTime).
				Str("request_id", v.RequestID).
				Msg("HTTP")
			return nil
		},
	}))
	if !s.dev {
		s.echo.Use(middleware.Recover())
	}
	s.echo.Use(middleware.Secure())

	if config.C.MetricsEnabled {
		s.echo.Use(metrics.Middleware())
	}
}

func (s *Server) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		log.Error().Err(err).Str("uri", ctx.Request().RequestURI).Msg("Unhandled error")
		httpErr = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}

	message := fmt.Sprint(httpErr.Message)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(httpErr.Code)
	} else {
		err = ctx.JSON(httpErr.Code, echo.Map{"message": message})
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to send error response")
	}
}

func noCache(next Handler) Handler {
	return func(ctx *context.Context) error {
		ctx.Response().Header().Set("Cache-Control", "no-store")
		return next(ctx)
	}
}
