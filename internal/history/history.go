// Package history keeps a local record of successfully registered movements,
// one JSON file per record. It is informational only: the backend remains the
// authority, and a failed write never fails the registration that produced it.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

// Record is one registered movement as confirmed by the server.
type Record struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Dir returns the history directory.
func Dir(homeDir string) string {
	return filepath.Join(session.Dir(homeDir), "history")
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// Write stores a single record file, creating the directory if needed.
func Write(homeDir string, r Record) error {
	dir := Dir(homeDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, r.ID+".json"), data, 0644)
}

// ReadAll reads every record, oldest first. Corrupted or partial files are
// skipped; they must not block reading valid records.
func ReadAll(homeDir string) ([]Record, error) {
	dir := Dir(homeDir)
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}

		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		if r.ID == "" || r.Kind == "" {
			continue
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

// FilterMonth keeps records whose date falls in the given month. Dates are
// the backend's "YYYY-MM-DD" strings; records with unparseable dates are
// dropped from the filtered view.
func FilterMonth(records []Record, year int, month time.Month) []Record {
	var out []Record
	for _, r := range records {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, r)
		}
	}
	return out
}
