package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/history"
)

func execExport(homeDir, monthFlag, outputFlag string, nowFn func() time.Time) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := exportCmd
	cmd.SetOut(stdout)

	err := runExport(cmd, homeDir, monthFlag, outputFlag, nowFn)
	return stdout.String(), err
}

func TestExportNoRecords(t *testing.T) {
	_, err := execExport(t.TempDir(), "2026-08", "", mockNow(time.Now()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no movements recorded")
}

func TestExportWritesFile(t *testing.T) {
	homeDir := t.TempDir()
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	seedHistory(t, homeDir,
		augRecord("a", "ENTRADA", "2026-08-10", "09:00", base),
		augRecord("b", "SALIDA", "2026-08-10", "17:30", base.Add(8*time.Hour)),
	)

	output := filepath.Join(t.TempDir(), "sheet.pdf")
	stdout, err := execExport(homeDir, "2026-08", output, mockNow(base))

	require.NoError(t, err)
	assert.Contains(t, stdout, "exported")
	assert.Contains(t, stdout, "sheet.pdf")

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBuildExportDataGroupsByDay(t *testing.T) {
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	records := []history.Record{
		augRecord("a", "ENTRADA", "2026-08-10", "09:00", base),
		augRecord("b", "PAUSA_INICIO", "2026-08-10", "12:00", base.Add(3*time.Hour)),
		augRecord("c", "PAUSA_FIN", "2026-08-10", "13:00", base.Add(4*time.Hour)),
		augRecord("d", "SALIDA", "2026-08-10", "17:30", base.Add(8*time.Hour)),
		augRecord("e", "ENTRADA", "2026-08-11", "09:15", base.Add(24*time.Hour)),
		augRecord("f", "SALIDA", "2026-08-11", "17:15", base.Add(32*time.Hour)),
	}

	data := buildExportData(records, 2026, time.August)

	require.Len(t, data.Days, 2)
	assert.Len(t, data.Days[0].Records, 4)
	assert.Equal(t, "8h 30m", data.Days[0].Worked)
	assert.Equal(t, "8h", data.Days[1].Worked)
	assert.Equal(t, "16h 30m", data.Worked)
}

func TestBuildExportDataIncompleteDayOmitsTotal(t *testing.T) {
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	records := []history.Record{
		augRecord("a", "ENTRADA", "2026-08-10", "09:00", base),
		augRecord("b", "SALIDA", "2026-08-10", "17:00", base.Add(8*time.Hour)),
		augRecord("c", "ENTRADA", "2026-08-11", "09:00", base.Add(24*time.Hour)),
	}

	data := buildExportData(records, 2026, time.August)

	require.Len(t, data.Days, 2)
	assert.Equal(t, "8h", data.Days[0].Worked)
	assert.Empty(t, data.Days[1].Worked, "a day still in progress has no duration")
	assert.Empty(t, data.Worked, "the monthly total is omitted when any day is incomplete")
}

func TestBuildExportDataSortsRecordsWithinDay(t *testing.T) {
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	records := []history.Record{
		augRecord("b", "SALIDA", "2026-08-10", "17:30", base.Add(8*time.Hour)),
		augRecord("a", "ENTRADA", "2026-08-10", "09:00", base),
	}

	data := buildExportData(records, 2026, time.August)

	require.Len(t, data.Days, 1)
	assert.Equal(t, "ENTRADA", data.Days[0].Records[0].Kind)
	assert.Equal(t, "SALIDA", data.Days[0].Records[1].Kind)
}

func TestDayClockTimes(t *testing.T) {
	records := []history.Record{
		{Kind: "ENTRADA", Time: "09:00"},
		{Kind: "PAUSA_INICIO", Time: "12:00"},
		{Kind: "SALIDA", Time: "17:00"},
		{Kind: "SALIDA", Time: "17:30"},
	}

	entry, exit := dayClockTimes(records)

	assert.Equal(t, "09:00", entry, "the first clock-in wins")
	assert.Equal(t, "17:30", exit, "the last clock-out wins")
}

func TestWorkedMinutes(t *testing.T) {
	mins, ok := workedMinutes("09:00", "17:30")
	require.True(t, ok)
	assert.Equal(t, 510, mins)

	_, ok = workedMinutes("17:30", "09:00")
	assert.False(t, ok, "inverted timestamps yield no duration")

	_, ok = workedMinutes("9am", "17:00")
	assert.False(t, ok)
}
