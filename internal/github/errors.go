package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
)

const (
	RateLimitMessage = "Rate Limit for GitHub API has been exceeded please try after 1 hour"
	ForbiddenMessage = "Operation not allowed in GitHub"
	NotFoundMessage  = "User/Resource not found or permissions are missing"
)

// ErrorKind classifies a failed upstream call.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindRateLimit
	KindForbidden
	KindNotFound
	KindConnection
	KindTimeout
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimit:
		return "rate_limit"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Error is returned by the client for every failed upstream call.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindUnknown if err was not produced by the client.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func classify(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &Error{Kind: KindRateLimit, Message: RateLimitMessage, Err: err}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &Error{Kind: KindRateLimit, Message: RateLimitMessage, Err: err}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return classifyStatus(respErr, err)
	}

	var acceptedErr *github.AcceptedError
	if errors.As(err, &acceptedErr) {
		return &Error{Kind: KindUpstream, Message: upstreamMessage(http.StatusAccepted), Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: err.Error(), Err: err}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.Is(err, context.Canceled) || errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &netErr) {
		return &Error{Kind: KindConnection, Message: err.Error(), Err: err}
	}

	return &Error{Kind: KindUpstream, Message: "Unexpected response from GitHub: " + err.Error(), Err: err}
}

func classifyStatus(respErr *github.ErrorResponse, err error) *Error {
	switch respErr.Response.StatusCode {
	case http.StatusForbidden:
		if isRateLimited(respErr) {
			return &Error{Kind: KindRateLimit, Message: RateLimitMessage, Err: err}
		}
		return &Error{Kind: KindForbidden, Message: ForbiddenMessage, Err: err}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimit, Message: RateLimitMessage, Err: err}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: NotFoundMessage, Err: err}
	default:
		return &Error{Kind: KindUpstream, Message: upstreamMessage(respErr.Response.StatusCode), Err: err}
	}
}

// isRateLimited looks for the rate limit notice GitHub puts in forbidden responses.
func isRateLimited(respErr *github.ErrorResponse) bool {
	if strings.Contains(strings.ToLower(respErr.Message), "rate limit") {
		return true
	}
	if respErr.Response.Header.Get("X-RateLimit-Remaining") == "0" {
		return true
	}
	if respErr.Response.Body == nil {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(respErr.Response.Body, 64<<10))
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(body)), "rate limit")
}

func upstreamMessage(status int) string {
	return fmt.Sprintf("Unexpected response from GitHub (status %d)", status)
}
