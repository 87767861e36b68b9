package github

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gistapi_upstream_requests_total",
			Help: "Total number of requests sent to the GitHub API, by response status code",
		},
		[]string{"code"},
	)

	upstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gistapi_upstream_errors_total",
			Help: "Total number of failed gist listings, by failure kind",
		},
		[]string{"kind"},
	)
)

func observeResponse(status int) {
	code := "none"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	upstreamRequests.WithLabelValues(code).Inc()
}

func observeError(kind ErrorKind) {
	upstreamErrors.WithLabelValues(kind.String()).Inc()
}
