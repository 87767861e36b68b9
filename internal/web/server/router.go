package server

import (
	"github.com/labstack/echo/v4"
	"github.com/thomiceli/gistapi/internal/web/context"
	"github.com/thomiceli/gistapi/internal/web/handlers/gist"
	"github.com/thomiceli/gistapi/internal/web/handlers/health"
)

func (s *Server) registerRoutes() {
	r := NewRouter(s.echo)

	{
		r.GET("/", gist.Index, noCache)
		r.GET("/healthcheck", health.Healthcheck, noCache)
		r.GET("/:username", gist.UserGists(s.github), noCache)
		// a trailing param node swallows the rest of the path, give it a child
		// so only single segment paths reach the gist handler
		r.Any("/:username/*", noRouteFound, noCache)
	}

	r.RouteNotFound("/*", noRouteFound, noCache)
}

// Router wraps echo.Echo to provide custom Handler support
type Router struct {
	*echo.Echo
}

func NewRouter(e *echo.Echo) *Router {
	return &Router{Echo: e}
}

func (r *Router) GET(path string, h Handler, m ...Middleware) {
	r.Echo.GET(path, chain(h, m...).toEchoHandler())
}

func (r *Router) Any(path string, h Handler, m ...Middleware) {
	r.Echo.Any(path, chain(h, m...).toEchoHandler())
}

func (r *Router) RouteNotFound(path string, h Handler, m ...Middleware) {
	r.Echo.RouteNotFound(path, chain(h, m...).toEchoHandler())
}

func noRouteFound(ctx *context.Context) error {
	return ctx.NotFound("Not Found")
}
