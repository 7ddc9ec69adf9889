// Package dispatch validates and registers attendance movements.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/attendance"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/auth"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/device"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/history"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/location"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

var (
	// ErrLocationPermission means location access has not been granted.
	// Recoverable by the user; not a server or network failure.
	ErrLocationPermission = errors.New("location permission not granted")

	// ErrLocationUnavailable means permission exists but no coordinate fix
	// could be obtained.
	ErrLocationUnavailable = errors.New("location unavailable")
)

// NotAllowedError reports a movement that is invalid from the current state.
// It is raised before any network call.
type NotAllowedError struct {
	Current  attendance.State
	Movement attendance.Movement
}

func (e *NotAllowedError) Error() string {
	return fmt.Sprintf("%s is not allowed while %s", e.Movement.Label(), e.Current)
}

// Result is a successfully registered movement.
type Result struct {
	Kind    attendance.Movement
	Date    string
	Time    string
	Message string
	State   attendance.State
}

// Register validates preconditions, registers the movement, and persists the
// resulting state. Preconditions are checked strictly in order: location
// permission, coordinate fix, auth token, then the transition table. Only
// when all pass is the remote call issued. The new state label must be
// persisted before the call reports success; it is the sole source of Paused
// recovery after a restart. A failed step leaves all prior state untouched
// and is never retried automatically.
func Register(
	ctx context.Context,
	client *api.Client,
	homeDir string,
	provider location.Provider,
	kind attendance.Movement,
	current attendance.State,
	breaksPermitted bool,
) (*Result, error) {
	if !provider.HasPermission() {
		return nil, ErrLocationPermission
	}

	coords, ok, err := provider.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	if !ok {
		return nil, ErrLocationUnavailable
	}

	token, err := auth.Token(homeDir)
	if err != nil {
		return nil, err
	}

	if !attendance.Allowed(current, kind, breaksPermitted) {
		return nil, &NotAllowedError{Current: current, Movement: kind}
	}

	deviceID, err := device.Resolve(homeDir, device.MachineID)
	if err != nil {
		return nil, err
	}

	resp, err := client.RegisterMovement(ctx, token, deviceID, api.MovementRequest{
		Kind:     string(kind),
		Location: coords.String(),
	})
	if err != nil {
		return nil, err
	}

	next := attendance.NextState(current, kind)
	if err := session.SetState(homeDir, string(next)); err != nil {
		return nil, fmt.Errorf("movement registered but state not persisted: %w", err)
	}

	// Best effort; the local history is informational.
	_ = history.Write(homeDir, history.Record{
		ID:        history.NewID(),
		Kind:      resp.Kind,
		Date:      resp.Date,
		Time:      resp.Time,
		Location:  coords.String(),
		Message:   resp.Message,
		CreatedAt: time.Now().UTC(),
	})

	return &Result{
		Kind:    kind,
		Date:    resp.Date,
		Time:    resp.Time,
		Message: resp.Message,
		State:   next,
	}, nil
}
