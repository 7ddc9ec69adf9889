package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/attendance"
	"github.com/mem1979/StaEnTurno-AntyGravity/internal/history"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export a monthly attendance sheet as PDF",
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month to export (YYYY-MM, default: current)"},
		{Name: "output", Usage: "output file (default: attendance-YYYY-MM.pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		monthFlag, _ := cmd.Flags().GetString("month")
		outputFlag, _ := cmd.Flags().GetString("output")

		return runExport(cmd, homeDir, monthFlag, outputFlag, time.Now)
	},
}.Build()

// exportDay holds one day's movements and the worked duration when the day
// has both a clock-in and a clock-out.
type exportDay struct {
	Date    time.Time
	Records []history.Record
	Worked  string
}

// exportData is the assembled sheet for one month.
type exportData struct {
	Year   int
	Month  time.Month
	Days   []exportDay
	Worked string // monthly total, omitted when any day is unavailable
}

func runExport(cmd *cobra.Command, homeDir, monthFlag, outputFlag string, nowFn func() time.Time) error {
	year, month, err := resolveMonth(monthFlag, nowFn())
	if err != nil {
		return err
	}

	records, err := history.ReadAll(homeDir)
	if err != nil {
		return err
	}
	records = history.FilterMonth(records, year, month)
	if len(records) == 0 {
		return fmt.Errorf("no movements recorded for %s %d", month, year)
	}

	data := buildExportData(records, year, month)

	if outputFlag == "" {
		outputFlag = fmt.Sprintf("attendance-%04d-%02d.pdf", year, int(month))
	}

	if err := renderExportPDF(data, outputFlag); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n",
		Primary(fmt.Sprintf("%s %d", month, year)),
		Primary(outputFlag),
	)
	return nil
}

// buildExportData groups records by day and computes per-day and monthly
// worked durations from the clock-in/clock-out pairs.
func buildExportData(records []history.Record, year int, month time.Month) exportData {
	byDay := make(map[string][]history.Record)
	for _, r := range records {
		byDay[r.Date] = append(byDay[r.Date], r)
	}

	dates := make([]string, 0, len(byDay))
	for d := range byDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	data := exportData{Year: year, Month: month}
	totalMins := 0
	totalKnown := true

	for _, dateStr := range dates {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		dayRecords := byDay[dateStr]
		sort.Slice(dayRecords, func(i, j int) bool {
			return dayRecords[i].Time < dayRecords[j].Time
		})

		day := exportDay{Date: date, Records: dayRecords}
		entry, exit := dayClockTimes(dayRecords)
		if worked, ok := attendance.WorkedDuration(entry, exit); ok {
			day.Worked = worked
			if mins, ok2 := workedMinutes(entry, exit); ok2 {
				totalMins += mins
			}
		} else {
			totalKnown = false
		}

		data.Days = append(data.Days, day)
	}

	if totalKnown && totalMins > 0 {
		data.Worked = attendance.FormatMinutes(totalMins)
	}
	return data
}

// dayClockTimes picks the day's clock-in and clock-out timestamps.
func dayClockTimes(records []history.Record) (entry, exit string) {
	for _, r := range records {
		switch r.Kind {
		case "ENTRADA":
			if entry == "" {
				entry = r.Time
			}
		case "SALIDA":
			exit = r.Time
		}
	}
	return entry, exit
}

// workedMinutes mirrors attendance.WorkedDuration but yields raw minutes for
// the monthly total.
func workedMinutes(entry, exit string) (int, bool) {
	e, err1 := time.Parse("15:04", entry)
	x, err2 := time.Parse("15:04", exit)
	if err1 != nil || err2 != nil || x.Before(e) {
		return 0, false
	}
	return int(x.Sub(e).Minutes()), true
}
