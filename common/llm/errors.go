package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
)

var ErrMissingAPIKey = errors.New("API key is required")

// ErrorKind classifies why a provider call failed.
type ErrorKind string

const (
	ErrorKindAuth          ErrorKind = "auth"
	ErrorKindRateLimit     ErrorKind = "rate_limit"
	ErrorKindBadRequest    ErrorKind = "bad_request"
	ErrorKindServer        ErrorKind = "server"
	ErrorKindNetwork       ErrorKind = "network"
	ErrorKindTimeout       ErrorKind = "timeout"
	ErrorKindEmptyResponse ErrorKind = "empty_response"
)

// ProviderError is returned by Client.Complete for every failed completion.
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int // zero when no HTTP response was received
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion provider %s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion provider %s error: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request could succeed later.
// Nothing retries today; the flag is logged so failures can be triaged.
func (e *ProviderError) Retryable() bool {
	switch e.Kind {
	case ErrorKindRateLimit, ErrorKindServer, ErrorKindNetwork, ErrorKindTimeout:
		return true
	default:
		return false
	}
}

// IsProviderError reports whether err is, or wraps, a *ProviderError.
func IsProviderError(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr)
}

func classify(err error) *ProviderError {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ProviderError{Kind: ErrorKindTimeout, Err: err}
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{Kind: kindForStatus(apiErr.StatusCode), StatusCode: apiErr.StatusCode, Err: err}
	}

	return &ProviderError{Kind: ErrorKindNetwork, Err: err}
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrorKindAuth
	case status == http.StatusTooManyRequests:
		return ErrorKindRateLimit
	case status == http.StatusRequestTimeout:
		return ErrorKindTimeout
	case status >= http.StatusInternalServerError:
		return ErrorKindServer
	default:
		return ErrorKindBadRequest
	}
}
