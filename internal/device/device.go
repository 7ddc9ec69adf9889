// Package device resolves the stable identifier that binds this installation
// to a backend session.
package device

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

// Resolve returns the installation's device identifier. Lookup order: the
// persisted session value, then the platform identifier, then a random UUID.
// Whichever value is used is persisted immediately, so the identifier never
// changes for the lifetime of the installation.
func Resolve(homeDir string, platformID func() (string, error)) (string, error) {
	sess, err := session.Read(homeDir)
	if err != nil {
		return "", err
	}
	if sess.DeviceID != "" {
		return sess.DeviceID, nil
	}

	var id string
	if platformID != nil {
		if v, err := platformID(); err == nil {
			id = strings.TrimSpace(v)
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	if err := session.SetDeviceID(homeDir, id); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}
	return id, nil
}

// MachineID is the default platform identifier source.
func MachineID() (string, error) {
	data, err := os.ReadFile("/etc/machine-id")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
