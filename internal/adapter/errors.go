package adapter

import "errors"

// Origin failures, mapped from HTTP status codes by mapHTTPError.
var (
	ErrNotPublished      = errors.New("document not published at origin")
	ErrAccessDenied      = errors.New("origin denied access")
	ErrOriginUnavailable = errors.New("origin unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected origin status")
)

var (
	// ErrInvalidURL is returned by [NewHTTPBundleSource] for a URL that is
	// not absolute http(s).
	ErrInvalidURL = errors.New("invalid origin url")

	// ErrDecodingResponse is returned when a response body is not the
	// expected JSON document.
	ErrDecodingResponse = errors.New("error decoding response")
)
