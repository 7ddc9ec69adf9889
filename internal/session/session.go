package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Session is the client-owned state that survives process restarts: the auth
// token, the installation's device identifier, and the last known attendance
// state label. The label exists solely to recover the Paused sub-state after
// a restart; the backend does not report "on break" as a fact.
type Session struct {
	Token           string `json:"token,omitempty"`
	DeviceID        string `json:"device_id,omitempty"`
	AttendanceState string `json:"attendance_state,omitempty"`
}

// Dir returns the client's state directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".staenturno")
}

// Path returns the path to the session file.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "session.json")
}

// Read loads the persisted session. A missing or unparseable file yields an
// empty session, never an error: there is no schema versioning, so anything
// unreadable is treated as absent.
func Read(homeDir string) (*Session, error) {
	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return &Session{}, nil
	}
	return &s, nil
}

// Write persists the session, creating the state directory if needed. The
// file holds the auth token, so it is not group/world readable.
func Write(homeDir string, s *Session) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0600)
}

// SetToken stores the auth token.
func SetToken(homeDir, token string) error {
	return update(homeDir, func(s *Session) { s.Token = token })
}

// ClearToken removes the auth token, leaving device id and state label intact.
func ClearToken(homeDir string) error {
	return update(homeDir, func(s *Session) { s.Token = "" })
}

// SetDeviceID stores the device identifier.
func SetDeviceID(homeDir, deviceID string) error {
	return update(homeDir, func(s *Session) { s.DeviceID = deviceID })
}

// SetState stores the attendance state label.
func SetState(homeDir, label string) error {
	return update(homeDir, func(s *Session) { s.AttendanceState = label })
}

func update(homeDir string, fn func(*Session)) error {
	s, err := Read(homeDir)
	if err != nil {
		return err
	}
	fn(s)
	return Write(homeDir, s)
}
