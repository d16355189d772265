package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport-level failure classes. Callers match them with [errors.Is].
var (
	// ErrNetwork indicates that the HTTP exchange itself failed: connection
	// refused, DNS failure, timeout, cancelled context. No response was
	// received from the server.
	ErrNetwork = errors.New("network failure")

	// ErrDecode indicates that the server responded with a success status but
	// the body could not be parsed as JSON.
	ErrDecode = errors.New("response is not valid json")
)

// Per-status sentinels unwrapped from [*HTTPError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// HTTPError is returned whenever the server responds with a non-2xx status.
// It carries the raw status code and the untouched response body, so the real
// cause of an error response is never obscured by a failed JSON decode of a
// plain-text error body.
//
// Unwrap maps well-known status codes to the sentinel errors above, so both
// forms work:
//
//	errors.Is(err, adapter.ErrInternalServerError)
//	var httpErr *adapter.HTTPError; errors.As(err, &httpErr)
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, body)
}

func (e *HTTPError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
