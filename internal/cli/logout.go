package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/auth"
)

var logoutCmd = LeafCommand{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runLogout(cmd, homeDir)
	},
}.Build()

func runLogout(cmd *cobra.Command, homeDir string) error {
	if err := auth.Logout(homeDir); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text("logged out"))
	return nil
}
