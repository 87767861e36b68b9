package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistapi/internal/config"
	"github.com/thomiceli/gistapi/internal/github"
	"github.com/thomiceli/gistapi/internal/validator"
)

type Server struct {
	echo *echo.Echo

	dev    bool
	github *github.Client
}

func NewServer(isDev bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = isDev
	e.Validator = validator.NewValidator()

	client, err := github.NewClient(config.C.GithubApiUrl,
		github.WithApiVersion(config.C.GithubApiVersion),
		github.WithPerPage(config.C.GithubPerPage),
		github.WithTimeout(config.C.GithubTimeout),
		github.WithUserAgent(config.C.GithubUserAgent),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create GitHub client")
	}

	s := &Server{echo: e, dev: isDev, github: client}

	s.useCustomContext()
	s.registerMiddlewares()
	s.echo.HTTPErrorHandler = s.errorHandler

	s.registerRoutes()

	return s
}

func (s *Server) Start() {
	addr := config.HttpAddr()

	log.Info().Msg("Starting HTTP server on http://" + addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (s *Server) Stop() {
	log.Info().Msg("Stopping HTTP server...")
	if err := s.echo.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to stop HTTP server")
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
