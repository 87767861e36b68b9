package metrics

import (
	"strings"
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/thomiceli/gistapi/internal/web/context"
)

var (
	middleware     echo.MiddlewareFunc
	middlewareOnce sync.Once
)

// Middleware returns the echo middleware recording HTTP metrics of the API server.
// The collectors are registered once in the default registry, so every server
// built by the process shares the same middleware.
func Middleware() echo.MiddlewareFunc {
	middlewareOnce.Do(func() {
		middleware = echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem: "gistapi",
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Path(), "/healthcheck")
			},
		})
	})
	return middleware
}

// Metrics handles prometheus metrics endpoint requests.
func Metrics(ctx *context.Context) error {
	return echoprometheus.NewHandler()(ctx.Context)
}
