// Package auth is the session controller: login, forced password change, and
// token lifecycle. It is the only place besides the dispatcher that performs
// network I/O.
package auth

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/device"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

// MinPasswordLength is enforced client-side before any network call.
const MinPasswordLength = 8

var (
	// ErrPasswordTooShort short-circuits ChangePassword without a request.
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)

	// ErrRejected means the server answered 2xx but refused the change.
	ErrRejected = errors.New("password change rejected by server")
)

// LoginResult reports where the caller should route after authentication.
type LoginResult struct {
	Username string
	DeviceID string

	// MustChangePassword is set when the account still has its default
	// password. The token is persisted regardless: it is already valid for
	// the change-password call.
	MustChangePassword bool
}

// Login authenticates against the backend and persists the returned token.
// The device identifier is resolved (and persisted on first use) before the
// call and attached as a header.
func Login(ctx context.Context, client *api.Client, homeDir, username, password string) (*LoginResult, error) {
	deviceID, err := device.Resolve(homeDir, device.MachineID)
	if err != nil {
		return nil, err
	}

	resp, err := client.Login(ctx, deviceID, username, password)
	if err != nil {
		return nil, err
	}

	if err := session.SetToken(homeDir, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	return &LoginResult{
		Username:           resp.Username,
		DeviceID:           deviceID,
		MustChangePassword: resp.PasswordDefault,
	}, nil
}

// ChangePassword sets a new password for the logged-in user. The length
// precondition is validated here, before any request is issued.
func ChangePassword(ctx context.Context, client *api.Client, homeDir, newPassword string) error {
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	token, err := Token(homeDir)
	if err != nil {
		return err
	}

	resp, err := client.ChangePassword(ctx, token, newPassword)
	if err != nil {
		return err
	}
	if !resp.Success {
		return ErrRejected
	}
	return nil
}

// Logout discards the persisted token. The device identifier and state label
// survive; they belong to the installation, not the session.
func Logout(homeDir string) error {
	return session.ClearToken(homeDir)
}

// Token returns the persisted auth token, or api.ErrUnauthenticated when none
// is stored. Absence is a distinct outcome so callers can redirect to login.
func Token(homeDir string) (string, error) {
	sess, err := session.Read(homeDir)
	if err != nil {
		return "", err
	}
	if sess.Token == "" {
		return "", api.ErrUnauthenticated
	}
	return sess.Token, nil
}
