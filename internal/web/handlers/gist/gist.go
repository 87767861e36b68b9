package gist

import (
	gocontext "context"
	"html"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/thomiceli/gistapi/internal/config"
	"github.com/thomiceli/gistapi/internal/github"
	"github.com/thomiceli/gistapi/internal/models"
	"github.com/thomiceli/gistapi/internal/web/context"
	"github.com/thomiceli/gistapi/internal/web/handlers"
)

type Lister interface {
	ListUserGists(ctx gocontext.Context, username string) ([]*models.Gist, error)
}

// UserGists serves one page of the public gists of the :username path param.
func UserGists(lister Lister) func(ctx *context.Context) error {
	return func(ctx *context.Context) error {
		username := html.EscapeString(ctx.Param("username"))
		ctx.Log().Debug().Msg("Received username " + username)

		params, err := handlers.GetPaginationParams(ctx, config.C.PaginationDefaultSize, config.C.PaginationMaxSize)
		if err != nil {
			return ctx.ErrorRes(http.StatusUnprocessableEntity, err.Error(), err)
		}

		gists, err := lister.ListUserGists(ctx.Request().Context(), username)
		if err != nil {
			status := statusOf(err)
			// ErrorRes already logs server side failures
			if status < 500 {
				ctx.Log().Error().Err(err).Str("kind", github.KindOf(err).String()).Msg("Cannot fetch gists of user " + username)
			}
			return ctx.ErrorRes(status, err.Error(), err)
		}

		ctx.Log().Info().Msg("Sending response data")
		ctx.Log().Info().Str("size", humanize.Bytes(models.TotalSize(gists))).Int("files", models.TotalFiles(gists)).
			Msgf("Found %d gists for user %s", len(gists), username)

		return ctx.Json(handlers.Paginate(gists, params))
	}
}

func statusOf(err error) int {
	switch github.KindOf(err) {
	case github.KindRateLimit, github.KindForbidden:
		return http.StatusForbidden
	case github.KindNotFound:
		return http.StatusNotFound
	case github.KindConnection:
		return http.StatusServiceUnavailable
	case github.KindTimeout:
		return http.StatusGatewayTimeout
	case github.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
