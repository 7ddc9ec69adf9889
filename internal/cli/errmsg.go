package cli

import (
	"errors"
	"fmt"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/dispatch"
)

// friendlyError maps the outcome taxonomy to the message shown to the user.
// Every outcome is a value the user can act on; nothing is retried for them.
func friendlyError(err error) string {
	var serverErr *api.ServerError
	var notAllowed *dispatch.NotAllowedError

	switch {
	case errors.Is(err, api.ErrNetwork):
		return "connection error, check your internet and try again"
	case errors.Is(err, api.ErrUnauthenticated):
		return "not authenticated (run 'staenturno login')"
	case errors.Is(err, dispatch.ErrLocationPermission):
		return "location not configured (run 'staenturno config set location <lat,lon>')"
	case errors.Is(err, dispatch.ErrLocationUnavailable):
		return "could not obtain a location fix"
	case errors.As(err, &serverErr):
		return fmt.Sprintf("server error (status %d)", serverErr.Code)
	case errors.As(err, &notAllowed):
		return notAllowed.Error()
	}
	return err.Error()
}
