// Package location defines the collaborator interface the dispatcher consumes
// for geotagging movements. How coordinates are actually obtained is outside
// the core's concern; the CLI pins them in the client config.
package location

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// String renders the pair in the backend's "lat,lon" wire form.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// ParseCoordinates parses a "lat,lon" pair.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q (expected \"lat,lon\")", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q", parts[1])
	}

	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v out of range", lon)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}

// Provider supplies current coordinates. Current returns ok=false when no fix
// is obtainable; that is an expected outcome, not an error.
type Provider interface {
	HasPermission() bool
	Current(ctx context.Context) (Coordinates, bool, error)
}

// Static always reports the same pinned coordinates.
type Static struct {
	Coords Coordinates
}

func (s Static) HasPermission() bool { return true }

func (s Static) Current(_ context.Context) (Coordinates, bool, error) {
	return s.Coords, true, nil
}

// None reports no permission and no coordinates.
type None struct{}

func (None) HasPermission() bool { return false }

func (None) Current(_ context.Context) (Coordinates, bool, error) {
	return Coordinates{}, false, nil
}

// Chain tries each provider in order and returns the first fix. It exposes the
// try-cheap-then-accurate fallback as a single operation so callers never
// sequence the stages themselves. Permission is granted if any stage has it.
type Chain struct {
	Providers []Provider
}

func (c Chain) HasPermission() bool {
	for _, p := range c.Providers {
		if p.HasPermission() {
			return true
		}
	}
	return false
}

func (c Chain) Current(ctx context.Context) (Coordinates, bool, error) {
	var lastErr error
	for _, p := range c.Providers {
		if !p.HasPermission() {
			continue
		}
		coords, ok, err := p.Current(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			return coords, true, nil
		}
	}
	return Coordinates{}, false, lastErr
}

// FromConfig builds the provider for this workstation. An absent location
// setting maps to no permission; a setting that fails to parse maps to
// permission-without-fix, so the user gets the recoverable "unavailable"
// outcome instead of a hard failure.
func FromConfig(cfg *session.Config) Provider {
	if cfg == nil || cfg.Location == "" {
		return None{}
	}
	coords, err := ParseCoordinates(cfg.Location)
	if err != nil {
		return broken{}
	}
	return Static{Coords: coords}
}

// broken has permission but never produces a fix.
type broken struct{}

func (broken) HasPermission() bool { return true }

func (broken) Current(_ context.Context) (Coordinates, bool, error) {
	return Coordinates{}, false, nil
}
