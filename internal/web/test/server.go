package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomiceli/gistapi/internal/config"
	"github.com/thomiceli/gistapi/internal/web/server"
)

type TestServer struct {
	server   *server.Server
	upstream *httptest.Server
}

// Setup starts a fake GitHub API served by upstream and builds the gist API
// server pointing at it. Options are applied to the config before the server is built.
func Setup(t *testing.T, upstream http.Handler, options ...func()) *TestServer {
	err := config.InitConfig("", io.Discard)
	require.NoError(t, err, "Could not init config")

	config.C.LogLevel = "debug"
	config.InitLog()

	s := &TestServer{}
	if upstream != nil {
		s.upstream = httptest.NewServer(upstream)
		config.C.GithubApiUrl = s.upstream.URL + "/"
	}

	for _, option := range options {
		option()
	}

	s.server = server.NewServer(true)
	return s
}

func Teardown(t *testing.T, s *TestServer) {
	if s.upstream != nil {
		s.upstream.Close()
	}
}

// UpstreamURL is the base url of the fake GitHub API.
func (s *TestServer) UpstreamURL() string {
	return s.upstream.URL
}

func (s *TestServer) Request(method, uri string, expectedCode int) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(method, "http://localhost:8000"+uri, nil)
	w := httptest.NewRecorder()

	s.server.ServeHTTP(w, req)

	if w.Code != expectedCode {
		return w, errors.New(fmt.Sprintf("unexpected status code %d, expected %d: %s", w.Code, expectedCode, w.Body.String()))
	}

	return w, nil
}

// RequestJSON performs a request and decodes the JSON body into out.
func (s *TestServer) RequestJSON(t *testing.T, uri string, expectedCode int, out any) {
	w, err := s.Request(http.MethodGet, uri, expectedCode)
	require.NoError(t, err)
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
