package health

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/thomiceli/gistapi/internal/config"
	"github.com/thomiceli/gistapi/internal/web/context"
)

var startTime = time.Now()

func Healthcheck(ctx *context.Context) error {
	now := time.Now()
	return ctx.JSON(200, map[string]interface{}{
		"gistapi": "ok",
		"version": config.GistApiVersion,
		"uptime":  strings.TrimSpace(humanize.RelTime(startTime, now, "", "")),
		"time":    now.Format(time.RFC3339),
	})
}
