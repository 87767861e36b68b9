package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistapi/internal/config"
	"github.com/thomiceli/gistapi/internal/web/handlers/metrics"
	"github.com/thomiceli/gistapi/internal/web/server"
	"github.com/urfave/cli/v2"
)

var CmdVersion = cli.Command{
	Name:  "version",
	Usage: "Print the version of gistapi",
	Action: func(c *cli.Context) error {
		fmt.Println("gistapi " + config.GistApiVersion)
		return nil
	},
}

var CmdStart = cli.Command{
	Name:  "start",
	Usage: "Start the gistapi server",
	Action: func(ctx *cli.Context) error {
		stopCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		Initialize(ctx)

		httpServer := server.NewServer(os.Getenv("GA_DEV") == "1")
		go httpServer.Start()

		var metricsServer *metrics.Server
		if config.C.MetricsEnabled {
			metricsServer = metrics.NewServer()
			go metricsServer.Start()
		}

		<-stopCtx.Done()
		log.Info().Msg("Shutting down...")

		httpServer.Stop()
		if metricsServer != nil {
			metricsServer.Stop()
		}
		return nil
	},
}

var ConfigFlag = cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to a config file in YAML format",
}

func App() error {
	app := cli.NewApp()
	app.Name = "gistapi"
	app.Usage = "An API that serves the public GitHub gists of a user."
	app.HelpName = "gistapi"
	app.Version = config.GistApiVersion

	app.Commands = []*cli.Command{&CmdVersion, &CmdStart}
	app.DefaultCommand = CmdStart.Name
	app.Flags = []cli.Flag{
		&ConfigFlag,
	}
	return app.Run(os.Args)
}

func Initialize(ctx *cli.Context) {
	fmt.Println("gistapi " + config.GistApiVersion)

	if err := config.InitConfig(ctx.String("config"), os.Stdout); err != nil {
		panic(err)
	}

	config.InitLog()

	log.Info().Str("api", config.C.GithubApiUrl).Dur("timeout", config.C.GithubTimeout).
		Int("per-page", config.C.GithubPerPage).Msg("GitHub upstream")
}
