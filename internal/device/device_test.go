package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

func TestResolvePrefersPersistedValue(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, session.SetDeviceID(homeDir, "persisted-id"))

	id, err := Resolve(homeDir, func() (string, error) { return "platform-id", nil })

	require.NoError(t, err)
	assert.Equal(t, "persisted-id", id)
}

func TestResolveUsesPlatformIDAndPersistsIt(t *testing.T) {
	homeDir := t.TempDir()

	id, err := Resolve(homeDir, func() (string, error) { return "platform-id\n", nil })

	require.NoError(t, err)
	assert.Equal(t, "platform-id", id)

	sess, err := session.Read(homeDir)
	require.NoError(t, err)
	assert.Equal(t, "platform-id", sess.DeviceID)
}

func TestResolveRandomFallbackIsStable(t *testing.T) {
	homeDir := t.TempDir()
	unavailable := func() (string, error) { return "", errors.New("no platform id") }

	first, err := Resolve(homeDir, unavailable)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	// Persisted after the first call, so the second call returns the same
	// value even though the fallback is random.
	second, err := Resolve(homeDir, unavailable)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	sess, err := session.Read(homeDir)
	require.NoError(t, err)
	assert.Equal(t, first, sess.DeviceID)
}

func TestResolveNilPlatformSource(t *testing.T) {
	homeDir := t.TempDir()

	id, err := Resolve(homeDir, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
