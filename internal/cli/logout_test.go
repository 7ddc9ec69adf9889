package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

func TestLogoutClearsToken(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, session.Write(homeDir, &session.Session{
		Token:           "tok-1",
		DeviceID:        "dev-1",
		AttendanceState: "WORKING",
	}))

	stdout := new(bytes.Buffer)
	cmd := logoutCmd
	cmd.SetOut(stdout)

	require.NoError(t, runLogout(cmd, homeDir))
	assert.Contains(t, stdout.String(), "logged out")

	sess, err := session.Read(homeDir)
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Equal(t, "dev-1", sess.DeviceID, "the device identifier belongs to the installation")
	assert.Equal(t, "WORKING", sess.AttendanceState)
}

func TestLogoutWithoutSession(t *testing.T) {
	cmd := logoutCmd
	cmd.SetOut(new(bytes.Buffer))

	assert.NoError(t, runLogout(cmd, t.TempDir()))
}
