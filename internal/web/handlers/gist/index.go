package gist

import (
	"github.com/thomiceli/gistapi/internal/web/context"
)

const WelcomeMessage = "Welcome to gist interface API, Please provide an Username to get gists eg. /octocat"

func Index(ctx *context.Context) error {
	return ctx.PlainText(200, WelcomeMessage)
}
