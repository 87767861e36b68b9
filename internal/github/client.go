package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistapi/internal/models"
)

const (
	DefaultBaseUrl    = "https://api.github.com/"
	DefaultApiVersion = "2022-11-28"
	DefaultPerPage    = 100
	DefaultTimeout    = 30 * time.Second

	mediaType = "application/vnd.github+json"
)

// Client lists public gists from the GitHub REST API, following pagination links.
type Client struct {
	gh         *github.Client
	apiVersion string
	perPage    int
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	apiVersion string
	perPage    int
	userAgent  string
}

// WithHTTPClient sets the HTTP client used for upstream calls. Its timeout is
// replaced when WithTimeout is also given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of each upstream request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithApiVersion sets the X-GitHub-Api-Version header.
func WithApiVersion(version string) Option {
	return func(o *clientOptions) {
		if version != "" {
			o.apiVersion = version
		}
	}
}

// WithPerPage sets the page size asked to GitHub, between 1 and 100.
func WithPerPage(perPage int) Option {
	return func(o *clientOptions) {
		if perPage >= 1 && perPage <= 100 {
			o.perPage = perPage
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// NewClient creates a client for the API at baseUrl (DefaultBaseUrl when empty).
func NewClient(baseUrl string, opts ...Option) (*Client, error) {
	options := &clientOptions{
		timeout:    DefaultTimeout,
		apiVersion: DefaultApiVersion,
		perPage:    DefaultPerPage,
	}
	for _, opt := range opts {
		opt(options)
	}

	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid GitHub API url %q: scheme must be http or https", baseUrl)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	} else {
		copied := *httpClient
		httpClient = &copied
	}
	httpClient.Timeout = options.timeout

	gh := github.NewClient(httpClient)
	gh.BaseURL = u
	if options.userAgent != "" {
		gh.UserAgent = options.userAgent
	}

	return &Client{
		gh:         gh,
		apiVersion: options.apiVersion,
		perPage:    options.perPage,
	}, nil
}

// ListUserGists returns every public gist of username, in the order GitHub
// sends them, across all pages. Errors are of type *Error.
func (c *Client) ListUserGists(ctx context.Context, username string) ([]*models.Gist, error) {
	gists, err := c.listAll(ctx, fmt.Sprintf("users/%s/gists?per_page=%d", url.PathEscape(username), c.perPage))
	if err != nil {
		e := classify(err)
		observeError(e.Kind)
		return nil, e
	}
	return gists, nil
}

func (c *Client) listAll(ctx context.Context, pageUrl string) ([]*models.Gist, error) {
	gists := make([]*models.Gist, 0)
	visited := make(map[string]struct{})

	for pageUrl != "" {
		key, err := c.resolve(pageUrl)
		if err != nil {
			return nil, err
		}
		if _, ok := visited[key]; ok {
			log.Warn().Str("url", key).Msg("GitHub pagination loops back to a visited page, stopping")
			break
		}
		visited[key] = struct{}{}

		page, next, err := c.fetchPage(ctx, pageUrl)
		if err != nil {
			return nil, err
		}
		gists = append(gists, page...)
		pageUrl = next
	}

	return gists, nil
}

// resolve returns the absolute form of pageUrl, relative urls being resolved
// against the API base url.
func (c *Client) resolve(pageUrl string) (string, error) {
	u, err := url.Parse(pageUrl)
	if err != nil {
		return "", err
	}
	return c.gh.BaseURL.ResolveReference(u).String(), nil
}

func (c *Client) fetchPage(ctx context.Context, pageUrl string) ([]*models.Gist, string, error) {
	req, err := c.gh.NewRequest(http.MethodGet, pageUrl, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", mediaType)
	req.Header.Set("X-GitHub-Api-Version", c.apiVersion)

	var page []*models.Gist
	resp, err := c.gh.Do(ctx, req, &page)
	if resp != nil && resp.Response != nil {
		observeResponse(resp.StatusCode)
	} else {
		observeResponse(0)
	}
	if err != nil {
		return nil, "", err
	}

	next := nextPageUrl(resp.Header)
	log.Debug().Str("url", req.URL.String()).Int("count", len(page)).Bool("hasNext", next != "").
		Msg("Fetched gists page from GitHub")

	return page, next, nil
}
