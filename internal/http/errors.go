package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports a request that could not be completed.
//
// StatusCode is zero when no response was received (DNS, connection or
// timeout failures).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// isRetryable reports whether a failed request is worth another attempt.
// Network failures, 429 and 5xx responses are retried; a cancelled run is not.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	if fe.StatusCode == 0 {
		return true
	}
	return fe.StatusCode == http.StatusTooManyRequests || fe.StatusCode >= 500
}

// asFetchError makes sure callers always receive a *FetchError.
func asFetchError(url string, err error) error {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{URL: url, Err: err}
}
