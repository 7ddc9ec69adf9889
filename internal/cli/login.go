package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/auth"
)

var loginCmd = LeafCommand{
	Use:   "login [username]",
	Short: "Authenticate against the attendance service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		client, err := newAPIClient(homeDir)
		if err != nil {
			return err
		}

		var username string
		if len(args) > 0 {
			username = args[0]
		}

		return runLogin(cmd, client, homeDir, username, NewPromptKit())
	},
}.Build()

func runLogin(cmd *cobra.Command, client *api.Client, homeDir, username string, pk PromptKit) error {
	w := cmd.OutOrStdout()

	var err error
	if username == "" {
		username, err = pk.Prompt("Username")
		if err != nil {
			return err
		}
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password, err := pk.Secret("Password")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	res, err := auth.Login(cmdContext(cmd), client, homeDir, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			return fmt.Errorf("invalid credentials or device not authorized")
		}
		return fmt.Errorf("%s", friendlyError(err))
	}

	if res.MustChangePassword {
		// The account still has its default password. The token is already
		// stored, so route straight into the change before anything else.
		_, _ = fmt.Fprintf(w, "%s\n", Warning("your password is still the default and must be changed"))
		return runPasswd(cmd, client, homeDir, pk)
	}

	_, _ = fmt.Fprintf(w, "logged in as %s\n", Primary(res.Username))
	return nil
}

func runPasswd(cmd *cobra.Command, client *api.Client, homeDir string, pk PromptKit) error {
	w := cmd.OutOrStdout()

	newPassword, err := pk.Secret(fmt.Sprintf("New password (min %d characters)", auth.MinPasswordLength))
	if err != nil {
		return err
	}
	confirm, err := pk.Secret("Repeat new password")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := auth.ChangePassword(cmdContext(cmd), client, homeDir, newPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return err
		}
		return fmt.Errorf("%s", friendlyError(err))
	}

	_, _ = fmt.Fprintf(w, "%s\n", Text("password changed"))
	return nil
}
