package flog

import (
	flogerrors "github.com/dangolsanat/FLog/internal/errors"
)

// Failure taxonomy, re-exported so SDK consumers compare against a single
// set of symbols.
var (
	ErrNoConnection         = flogerrors.ErrNoConnection
	ErrInvalidResponse      = flogerrors.ErrInvalidResponse
	ErrUnauthorized         = flogerrors.ErrUnauthorized
	ErrCancelled            = flogerrors.ErrCancelled
	ErrUnknown              = flogerrors.ErrUnknown
	ErrDeviceIDNotAvailable = flogerrors.ErrDeviceIDNotAvailable
	ErrInvalidImageData     = flogerrors.ErrInvalidImageData
	ErrImageTooLarge        = flogerrors.ErrImageTooLarge
)

// HTTPError carries a non-2xx status code and the response body.
type HTTPError = flogerrors.HTTPError

// UploadError carries the storage service's error message verbatim.
type UploadError = flogerrors.UploadError
