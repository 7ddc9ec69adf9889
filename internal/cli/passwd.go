package cli

import (
	"github.com/spf13/cobra"
)

var passwdCmd = LeafCommand{
	Use:   "passwd",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		client, err := newAPIClient(homeDir)
		if err != nil {
			return err
		}

		return runPasswd(cmd, client, homeDir, NewPromptKit())
	},
}.Build()
