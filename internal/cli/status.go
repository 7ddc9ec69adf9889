package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/api"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/attendance"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/home"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show today's attendance status",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		client, err := newAPIClient(homeDir)
		if err != nil {
			return err
		}

		return runStatus(cmd, client, homeDir)
	},
}.Build()

func runStatus(cmd *cobra.Command, client *api.Client, homeDir string) error {
	w := cmd.OutOrStdout()

	snap, err := home.Load(cmdContext(cmd), client, homeDir)
	if err != nil {
		var ae *home.AttendanceError
		if errors.As(err, &ae) && snap != nil {
			// The profile survived; show it with a warning instead of
			// discarding what we have.
			printProfile(cmd, snap)
			_, _ = fmt.Fprintf(w, "\n%s %s\n", Warning("warning:"), Text(friendlyError(ae.Err)))
			return nil
		}
		return fmt.Errorf("%s", friendlyError(err))
	}

	printProfile(cmd, snap)
	_, _ = fmt.Fprintln(w)

	if snap.Facts.Holiday {
		_, _ = fmt.Fprintf(w, "%s %s\n", Info("holiday:"), Text(snap.Facts.HolidayDesc))
	}
	if snap.Facts.OnLeave {
		_, _ = fmt.Fprintf(w, "%s %s\n", Info("on leave:"), Text(snap.Facts.LeaveDesc))
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("State:"), stateLabel(snap.State))

	if snap.Facts.EntryClocked {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Clocked in:"), Text(snap.Facts.EntryTime))
	}
	if snap.Facts.ExitClocked {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Clocked out:"), Text(snap.Facts.ExitTime))
	}

	if snap.State == attendance.Finished {
		worked := snap.WorkedDuration
		if worked == "" {
			worked = "not available"
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Worked:"), Primary(worked))
	}

	if moves := attendance.AllowedMovements(snap.State, snap.BreaksPermitted); len(moves) > 0 {
		labels := make([]string, len(moves))
		for i, m := range moves {
			labels[i] = movementCommand(m)
		}
		_, _ = fmt.Fprintf(w, "\n%s %s\n", Silent("Next:"), Text(strings.Join(labels, ", ")))
	}

	return nil
}

func printProfile(cmd *cobra.Command, snap *home.Snapshot) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Name: "), Primary(snap.FullName))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Shift:"), Text(snap.ActiveShift))
}

func stateLabel(s attendance.State) string {
	switch s {
	case attendance.NotStarted:
		return Text("not started")
	case attendance.Working:
		return Info("working")
	case attendance.Paused:
		return Warning("on break")
	case attendance.Finished:
		return Primary("finished")
	}
	return Text(string(s))
}

// movementCommand maps a movement to the CLI invocation that performs it.
func movementCommand(m attendance.Movement) string {
	switch m {
	case attendance.Entry:
		return "staenturno clock in"
	case attendance.BreakStart:
		return "staenturno break start"
	case attendance.BreakEnd:
		return "staenturno break end"
	case attendance.Exit:
		return "staenturno clock out"
	}
	return string(m)
}
