// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neurox/neurox2-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so callers can still
// reach [*adapter.HTTPError] via [errors.As].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrDecode):
		return fmt.Errorf("%w: %w", ErrMalformedServerResponse, err)

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrRejectedByServer, extractBody(err))

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFoundOnServer, err)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerSideFailure, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "http 400: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
