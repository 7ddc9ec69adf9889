package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/location"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

// cmdContext returns the command's context, falling back to Background when
// the command was not run through Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newAPIClient builds the service client from the persisted configuration.
func newAPIClient(homeDir string) (*api.Client, error) {
	cfg, err := session.ReadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no backend configured (run 'staenturno config set base_url <url>')")
	}
	return api.NewClient(cfg.BaseURL), nil
}

// newLocationProvider builds the location collaborator from the persisted
// configuration.
func newLocationProvider(homeDir string) (location.Provider, error) {
	cfg, err := session.ReadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	return location.FromConfig(cfg), nil
}

func getHomeDir() (string, error) {
	return os.UserHomeDir()
}
