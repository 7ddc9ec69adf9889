package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/attendance"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/dispatch"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/home"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/location"
)

// movementRunE builds the RunE shared by all four movement commands.
func movementRunE(kind attendance.Movement) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		client, err := newAPIClient(homeDir)
		if err != nil {
			return err
		}

		provider, err := newLocationProvider(homeDir)
		if err != nil {
			return err
		}

		return runMovement(cmd, client, homeDir, provider, kind)
	}
}

// runMovement loads the current reconciled state, registers the movement, and
// reports the outcome. The load is mandatory: the dispatcher's precondition
// check needs the authoritative current state, not a guess.
func runMovement(cmd *cobra.Command, client *api.Client, homeDir string, provider location.Provider, kind attendance.Movement) error {
	w := cmd.OutOrStdout()

	snap, err := home.Load(cmdContext(cmd), client, homeDir)
	if err != nil {
		var ae *home.AttendanceError
		if !errors.As(err, &ae) {
			return fmt.Errorf("%s", friendlyError(err))
		}
		// Without today's facts there is no trustworthy current state to
		// validate the movement against.
		return fmt.Errorf("%s", friendlyError(ae.Err))
	}

	res, err := dispatch.Register(cmdContext(cmd), client, homeDir, provider, kind, snap.State, snap.BreaksPermitted)
	if err != nil {
		return fmt.Errorf("%s", friendlyError(err))
	}

	msg := res.Message
	if msg == "" {
		msg = res.Kind.Label() + " registered"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(msg), Silent("("+res.Time+")"))

	if kind == attendance.Exit {
		if worked, ok := attendance.WorkedDuration(snap.Facts.EntryTime, res.Time); ok {
			_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Worked:"), Primary(worked))
		}
	}

	return nil
}

var clockCmd = GroupCommand{
	Use:   "clock",
	Short: "Clock in or out",
	Subcommands: []*cobra.Command{
		LeafCommand{
			Use:   "in",
			Short: "Register the start of your shift",
			RunE:  movementRunE(attendance.Entry),
		}.Build(),
		LeafCommand{
			Use:   "out",
			Short: "Register the end of your shift",
			RunE:  movementRunE(attendance.Exit),
		}.Build(),
	},
}.Build()

var breakCmd = GroupCommand{
	Use:   "break",
	Short: "Start or end a break",
	Subcommands: []*cobra.Command{
		LeafCommand{
			Use:   "start",
			Short: "Pause your shift",
			RunE:  movementRunE(attendance.BreakStart),
		}.Build(),
		LeafCommand{
			Use:   "end",
			Short: "Resume your shift",
			RunE:  movementRunE(attendance.BreakEnd),
		}.Build(),
	},
}.Build()
