package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	require.NoError(t, InitConfig("", io.Discard))

	assert.Equal(t, "warn", C.LogLevel)
	assert.Equal(t, "0.0.0.0:8000", HttpAddr())
	assert.Equal(t, "https://api.github.com/", C.GithubApiUrl)
	assert.Equal(t, "2022-11-28", C.GithubApiVersion)
	assert.Equal(t, 100, C.GithubPerPage)
	assert.Equal(t, 30*time.Second, C.GithubTimeout)
	assert.Equal(t, 50, C.PaginationDefaultSize)
	assert.Equal(t, 100, C.PaginationMaxSize)
	assert.False(t, C.MetricsEnabled)
}

func TestInitConfigYamlAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	err := os.WriteFile(configPath, []byte(`
log-level: debug
http.port: "9000"
github.api-url: http://localhost:1234
github.timeout: 5s
pagination.default-size: 20
`), 0644)
	require.NoError(t, err)

	t.Setenv("GA_HTTP_PORT", "9100")
	t.Setenv("GA_METRICS_ENABLED", "true")

	require.NoError(t, InitConfig(configPath, io.Discard))

	assert.Equal(t, "debug", C.LogLevel)
	assert.Equal(t, "9100", C.HttpPort, "env must win over the yaml file")
	assert.Equal(t, "http://localhost:1234/", C.GithubApiUrl)
	assert.Equal(t, 5*time.Second, C.GithubTimeout)
	assert.Equal(t, 20, C.PaginationDefaultSize)
	assert.True(t, C.MetricsEnabled)
}

func TestInitConfigConfigEnvVariable(t *testing.T) {
	t.Setenv("CONFIG", "github.per-page: 30\nmetrics.port: \"7000\"")

	require.NoError(t, InitConfig("", io.Discard))

	assert.Equal(t, 30, C.GithubPerPage)
	assert.Equal(t, "0.0.0.0:7000", MetricsAddr())
}

func TestInitConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "per page too large", key: "GA_GITHUB_PER_PAGE", val: "101"},
		{name: "per page not a number", key: "GA_GITHUB_PER_PAGE", val: "abc"},
		{name: "bad duration", key: "GA_GITHUB_TIMEOUT", val: "soon"},
		{name: "default size above max", key: "GA_PAGINATION_DEFAULT_SIZE", val: "500"},
		{name: "bad bool", key: "GA_METRICS_ENABLED", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			require.Error(t, InitConfig("", io.Discard))
		})
	}
}

func TestInitConfigMissingFile(t *testing.T) {
	require.NoError(t, InitConfig(filepath.Join(t.TempDir(), "missing.yml"), io.Discard))
	assert.Equal(t, "8000", C.HttpPort)
}
