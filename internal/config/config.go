package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var GistApiVersion = "0.0.1"

var C *config

// Not using nested structs because the library
// doesn't support dot notation in this case sadly
type config struct {
	LogLevel  string `yaml:"log-level" env:"GA_LOG_LEVEL"`
	LogOutput string `yaml:"log-output" env:"GA_LOG_OUTPUT"`
	LogFile   string `yaml:"log-file" env:"GA_LOG_FILE"`

	HttpHost string `yaml:"http.host" env:"GA_HTTP_HOST"`
	HttpPort string `yaml:"http.port" env:"GA_HTTP_PORT"`

	GithubApiUrl     string        `yaml:"github.api-url" env:"GA_GITHUB_API_URL"`
	GithubApiVersion string        `yaml:"github.api-version" env:"GA_GITHUB_API_VERSION"`
	GithubPerPage    int           `yaml:"github.per-page" env:"GA_GITHUB_PER_PAGE"`
	GithubTimeout    time.Duration `yaml:"github.timeout" env:"GA_GITHUB_TIMEOUT"`
	GithubUserAgent  string        `yaml:"github.user-agent" env:"GA_GITHUB_USER_AGENT"`

	PaginationDefaultSize int `yaml:"pagination.default-size" env:"GA_PAGINATION_DEFAULT_SIZE"`
	PaginationMaxSize     int `yaml:"pagination.max-size" env:"GA_PAGINATION_MAX_SIZE"`

	MetricsEnabled bool   `yaml:"metrics.enabled" env:"GA_METRICS_ENABLED"`
	MetricsHost    string `yaml:"metrics.host" env:"GA_METRICS_HOST"`
	MetricsPort    string `yaml:"metrics.port" env:"GA_METRICS_PORT"`
}

func configWithDefaults() *config {
	c := &config{}

	c.LogLevel = "warn"
	c.LogOutput = "stdout"
	c.LogFile = "gistapi.log"

	c.HttpHost = "0.0.0.0"
	c.HttpPort = "8000"

	c.GithubApiUrl = "https://api.github.com/"
	c.GithubApiVersion = "2022-11-28"
	c.GithubPerPage = 100
	c.GithubTimeout = 30 * time.Second
	c.GithubUserAgent = "gistapi/" + GistApiVersion

	c.PaginationDefaultSize = 50
	c.PaginationMaxSize = 100

	c.MetricsEnabled = false
	c.MetricsHost = "0.0.0.0"
	c.MetricsPort = "6158"

	return c
}

func InitConfig(configPath string, out io.Writer) error {
	// Default values
	c := configWithDefaults()

	if err := loadConfigFromYaml(c, configPath, out); err != nil {
		return err
	}

	if err := loadConfigFromEnv(c, out); err != nil {
		return err
	}

	if err := c.validate(); err != nil {
		return err
	}

	C = c

	return nil
}

func InitLog() {
	var writers []io.Writer
	for _, output := range strings.Split(C.LogOutput, ",") {
		switch strings.TrimSpace(output) {
		case "stdout":
			writers = append(writers, zerolog.NewConsoleWriter())
		case "file":
			if err := os.MkdirAll(filepath.Dir(C.LogFile), 0755); err != nil {
				panic(err)
			}
			file, err := os.OpenFile(C.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				panic(err)
			}
			writers = append(writers, file)
		}
	}
	if len(writers) == 0 {
		writers = append(writers, zerolog.NewConsoleWriter())
	}
	multi := zerolog.MultiLevelWriter(writers...)

	level, err := zerolog.ParseLevel(C.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(multi).Level(level).With().Timestamp().Logger()
}

// HttpAddr is the listen address of the gist API server.
func HttpAddr() string {
	return C.HttpHost + ":" + C.HttpPort
}

// MetricsAddr is the listen address of the metrics server.
func MetricsAddr() string {
	return C.MetricsHost + ":" + C.MetricsPort
}

func (c *config) validate() error {
	if c.GithubPerPage < 1 || c.GithubPerPage > 100 {
		return fmt.Errorf("github.per-page must be between 1 and 100, got %d", c.GithubPerPage)
	}
	if c.GithubTimeout <= 0 {
		return fmt.Errorf("github.timeout must be positive")
	}
	if c.PaginationMaxSize < 1 {
		return fmt.Errorf("pagination.max-size must be positive")
	}
	if c.PaginationDefaultSize < 1 || c.PaginationDefaultSize > c.PaginationMaxSize {
		return fmt.Errorf("pagination.default-size must be between 1 and %d, got %d", c.PaginationMaxSize, c.PaginationDefaultSize)
	}
	if !strings.HasSuffix(c.GithubApiUrl, "/") {
		c.GithubApiUrl += "/"
	}
	return nil
}

func loadConfigFromYaml(c *config, configPath string, out io.Writer) error {
	if configPath != "" {
		absolutePath, _ := filepath.Abs(configPath)
		absolutePath = filepath.Clean(absolutePath)
		file, err := os.Open(absolutePath)
		if err != nil {
			if !os.IsNotExist(err) {
				return err
			}
			_, _ = fmt.Fprintln(out, "No YAML config file found at "+absolutePath)
		} else {
			_, _ = fmt.Fprintln(out, "Using YAML config file: "+absolutePath)

			// Override default values with values from config.yml
			d := yaml.NewDecoder(file)
			if err = d.Decode(c); err != nil && err != io.EOF {
				_ = file.Close()
				return err
			}
			_ = file.Close()
		}
	}

	// Override default values with environment variables (as yaml)
	configEnv := os.Getenv("CONFIG")
	if configEnv != "" {
		_, _ = fmt.Fprintln(out, "Using config from environment variable: CONFIG")
		d := yaml.NewDecoder(strings.NewReader(configEnv))
		if err := d.Decode(c); err != nil {
			return err
		}
	}

	return nil
}

func loadConfigFromEnv(c *config, out io.Writer) error {
	v := reflect.ValueOf(c).Elem()
	var envVars []string

	for i := 0; i < v.NumField(); i++ {
		tag := v.Type().Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}

		envValue, ok := os.LookupEnv(strings.ToUpper(tag))
		if !ok {
			continue
		}

		field := v.Field(i)
		switch field.Interface().(type) {
		case string:
			field.SetString(envValue)
		case int:
			intValue, err := strconv.Atoi(envValue)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", tag, err)
			}
			field.SetInt(int64(intValue))
		case bool:
			boolValue, err := strconv.ParseBool(envValue)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", tag, err)
			}
			field.SetBool(boolValue)
		case time.Duration:
			durationValue, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", tag, err)
			}
			field.SetInt(int64(durationValue))
		default:
			return fmt.Errorf("unsupported type for %s", tag)
		}

		envVars = append(envVars, tag)
	}

	if len(envVars) > 0 {
		_, _ = fmt.Fprintln(out, "Using environment variables config: "+strings.Join(envVars, ", "))
	}

	return nil
}
