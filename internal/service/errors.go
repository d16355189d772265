package service

import "errors"

var (
	ErrServerUnavailable       = errors.New("wellness server is unreachable")
	ErrMalformedServerResponse = errors.New("wellness server returned a malformed response")
	ErrRejectedByServer        = errors.New("request rejected by wellness server")
	ErrNotFoundOnServer        = errors.New("not found on wellness server")
	ErrServerSideFailure       = errors.New("wellness server side failure")
)
