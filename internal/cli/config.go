package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/location"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/session"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage client configuration",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
	},
}.Build()

var configGetCmd = LeafCommand{
	Use:   "get",
	Short: "Show the client configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, homeDir)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir string) error {
	cfg, err := session.ReadConfig(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "(not set)"
	}
	loc := cfg.Location
	if loc == "" {
		loc = "(not set)"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("base_url:"), Text(baseURL))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("location:"), Text(loc))
	return nil
}

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (base_url or location)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := session.ReadConfig(homeDir)
	if err != nil {
		return err
	}

	switch key {
	case "base_url":
		cfg.BaseURL = value
	case "location":
		if _, err := location.ParseCoordinates(value); err != nil {
			return err
		}
		cfg.Location = value
	default:
		return fmt.Errorf("unknown config key %q (expected base_url or location)", key)
	}

	if err := session.WriteConfig(homeDir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s set\n", Primary(key))
	return nil
}
