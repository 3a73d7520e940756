package errors

import (
	"context"
	"errors"
)

// Retryable reports whether a failed attempt may be repeated. Transport
// errors and 5xx responses are treated as transient; 4xx client errors are
// not, except 408 and 429 which signal a retry explicitly. Cancellation and
// the offline short-circuit are never retried.
func Retryable(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		switch {
		case he.StatusCode == 408 || he.StatusCode == 429:
			return true
		case he.StatusCode >= 400 && he.StatusCode < 500:
			return false
		default:
			return true
		}
	}
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrCancelled),
		errors.Is(err, ErrNoConnection),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
