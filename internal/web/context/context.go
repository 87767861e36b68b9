package context

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Context struct {
	echo.Context
}

func NewContext(c echo.Context) *Context {
	return &Context{Context: c}
}

// RequestID returns the id given to the request by the request id middleware.
func (ctx *Context) RequestID() string {
	return ctx.Response().Header().Get(echo.HeaderXRequestID)
}

// Log returns the global logger carrying the request id.
func (ctx *Context) Log() *zerolog.Logger {
	logger := log.With().Str("request_id", ctx.RequestID()).Logger()
	return &logger
}

func (ctx *Context) ErrorRes(code int, message string, err error) error {
	if code >= 500 {
		var skipLogger = log.With().CallerWithSkipFrameCount(3).Str("request_id", ctx.RequestID()).Logger()
		skipLogger.Error().Err(err).Msg(message)
	}

	return &echo.HTTPError{Code: code, Message: message, Internal: err}
}

func (ctx *Context) Json(data any) error {
	return ctx.JsonWithCode(200, data)
}

func (ctx *Context) JsonWithCode(code int, data any) error {
	return ctx.JSON(code, data)
}

func (ctx *Context) PlainText(code int, message string) error {
	return ctx.String(code, message)
}

func (ctx *Context) NotFound(message string) error {
	return ctx.ErrorRes(404, message, nil)
}
