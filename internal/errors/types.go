// Package errors defines the client's failure taxonomy. The taxonomy is
// deliberately flat: connectivity, transport/HTTP status, decoding,
// cancellation, and a handful of domain-specific conditions.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConnection is returned without any HTTP attempt when the
	// connectivity monitor reports the device offline.
	ErrNoConnection = errors.New("no internet connection")

	// ErrInvalidResponse marks a malformed or undecodable response body.
	ErrInvalidResponse = errors.New("invalid server response")

	// ErrUnauthorized marks a 401 from the backend, distinguished from the
	// generic HTTPError so callers can prompt for reconfiguration.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCancelled marks a request aborted by the caller or by bulk
	// cancellation. Callers typically ignore it rather than surface it.
	ErrCancelled = errors.New("request cancelled")

	// ErrUnknown covers failures that fit no other kind.
	ErrUnknown = errors.New("unknown network error")

	// ErrDeviceIDNotAvailable is returned when an operation needs the
	// device identity and none was configured.
	ErrDeviceIDNotAvailable = errors.New("device id not available")

	// ErrInvalidImageData is returned when image bytes are empty or the
	// external processor cannot read them.
	ErrInvalidImageData = errors.New("invalid image data")

	// ErrImageTooLarge is returned when an upload exceeds the configured
	// maximum size.
	ErrImageTooLarge = errors.New("image exceeds maximum upload size")
)

// HTTPError carries a non-2xx status code and the response body.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %d", e.StatusCode)
}

// UploadError carries the storage service's error message verbatim.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %s", e.Message)
}
