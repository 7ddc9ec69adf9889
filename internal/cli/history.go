package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/history"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show locally recorded movements",
	BoolFlags: []BoolFlag{
		{Name: "plain", Usage: "print a plain list instead of the interactive view"},
	},
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month to show (YYYY-MM, default: current)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		monthFlag, _ := cmd.Flags().GetString("month")
		plainFlag, _ := cmd.Flags().GetBool("plain")

		interactive := !plainFlag && isatty.IsTerminal(os.Stdout.Fd())
		return runHistory(cmd, homeDir, monthFlag, interactive, time.Now)
	},
}.Build()

// resolveMonth parses the --month flag, defaulting to the current month.
func resolveMonth(monthFlag string, now time.Time) (int, time.Month, error) {
	if monthFlag == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", monthFlag)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month format, expected YYYY-MM: %w", err)
	}
	return t.Year(), t.Month(), nil
}

func runHistory(cmd *cobra.Command, homeDir, monthFlag string, interactive bool, nowFn func() time.Time) error {
	year, month, err := resolveMonth(monthFlag, nowFn())
	if err != nil {
		return err
	}

	records, err := history.ReadAll(homeDir)
	if err != nil {
		return err
	}
	records = history.FilterMonth(records, year, month)

	w := cmd.OutOrStdout()
	if len(records) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("no movements recorded for %s %d", month, year)))
		return nil
	}

	if interactive {
		return runHistoryView(records, year, month)
	}

	for _, line := range historyLines(records) {
		_, _ = fmt.Fprintln(w, line)
	}
	return nil
}

// historyLines renders records as plain rows, a date header before each day.
func historyLines(records []history.Record) []string {
	var lines []string
	lastDate := ""
	for _, r := range records {
		if r.Date != lastDate {
			lines = append(lines, Silent(r.Date))
			lastDate = r.Date
		}
		line := fmt.Sprintf("  %s  %s", Text(r.Time), Primary(kindLabel(r.Kind)))
		if r.Message != "" {
			line += "  " + Silent(r.Message)
		}
		lines = append(lines, line)
	}
	return lines
}

func kindLabel(kind string) string {
	switch kind {
	case "ENTRADA":
		return "clock-in"
	case "PAUSA_INICIO":
		return "break start"
	case "PAUSA_FIN":
		return "break end"
	case "SALIDA":
		return "clock-out"
	}
	return kind
}
