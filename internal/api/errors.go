package api

import (
	"errors"
	"fmt"
)

// ErrNetwork wraps any transport-level failure (connectivity, timeout, DNS).
// Callers never retry automatically; the user re-invokes the action.
var ErrNetwork = errors.New("network error")

// ErrUnauthenticated is returned for a 401 response, or by callers when no
// token is stored locally. It is surfaced distinctly so the CLI can redirect
// to login instead of reporting a generic server failure.
var ErrUnauthenticated = errors.New("unauthenticated")

// ServerError is any non-2xx response other than 401, surfaced with its
// status code.
type ServerError struct {
	Code int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Code)
}

func netErr(err error) error {
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func statusErr(code int) error {
	if code == 401 {
		return ErrUnauthenticated
	}
	return &ServerError{Code: code}
}
