// Package home sequences the two fetches behind the home view: profile and
// today's attendance facts.
package home

import (
	"context"
	"fmt"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/attendance"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/auth"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

// ProfileError means the profile fetch failed. It is fatal to the load:
// nothing else is fetched.
type ProfileError struct {
	Err error
}

func (e *ProfileError) Error() string { return fmt.Sprintf("failed to load profile: %v", e.Err) }
func (e *ProfileError) Unwrap() error { return e.Err }

// AttendanceError means the today-facts fetch failed after the profile
// succeeded. The snapshot returned alongside it still carries the profile.
type AttendanceError struct {
	Err error
}

func (e *AttendanceError) Error() string { return fmt.Sprintf("failed to load attendance: %v", e.Err) }
func (e *AttendanceError) Unwrap() error { return e.Err }

// Snapshot is everything the home view needs: profile, today's facts, the
// reconciled state, and the worked duration once the shift is finished.
type Snapshot struct {
	Username        string
	FullName        string
	ActiveShift     string
	BreaksPermitted bool

	Facts attendance.Facts
	State attendance.State

	// WorkedDuration is set only when the shift is finished and both
	// timestamps parsed; otherwise it stays empty and callers show a
	// placeholder.
	WorkedDuration string
}

// Load fetches the profile, then today's facts, and reconciles the state with
// the persisted label. The facts are always re-fetched, never cached. On
// success the derived state label is re-persisted, keeping the local record
// honest across restarts.
func Load(ctx context.Context, client *api.Client, homeDir string) (*Snapshot, error) {
	token, err := auth.Token(homeDir)
	if err != nil {
		return nil, err
	}

	profile, err := client.Profile(ctx, token)
	if err != nil {
		return nil, &ProfileError{Err: err}
	}

	snap := &Snapshot{
		Username:        profile.Username,
		FullName:        profile.FullName,
		ActiveShift:     profile.ActiveShift,
		BreaksPermitted: profile.AllowsBreak,
	}

	today, err := client.Today(ctx, token)
	if err != nil {
		return snap, &AttendanceError{Err: err}
	}

	snap.Facts = attendance.Facts{
		Date:         today.Date,
		EntryClocked: today.EntryClocked,
		EntryTime:    today.EntryTime,
		ExitClocked:  today.ExitClocked,
		ExitTime:     today.ExitTime,
		OnLeave:      today.OnLeave,
		LeaveKind:    today.LeaveKind,
		LeaveDesc:    today.LeaveDesc,
		Holiday:      today.Holiday,
		HolidayDesc:  today.HolidayDesc,
	}

	sess, err := session.Read(homeDir)
	if err != nil {
		return snap, err
	}

	snap.State = attendance.DeriveState(snap.Facts, sess.AttendanceState)
	if err := session.SetState(homeDir, string(snap.State)); err != nil {
		return snap, err
	}

	if snap.State == attendance.Finished {
		if d, ok := attendance.WorkedDuration(snap.Facts.EntryTime, snap.Facts.ExitTime); ok {
			snap.WorkedDuration = d
		}
	}

	return snap, nil
}
