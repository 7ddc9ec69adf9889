package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mem1979/StaEnTurno-AntyGravity/internal/history"
)

var (
	historyHeaderStyle = lipgloss.NewStyle().Bold(true)
	historyFooterStyle = lipgloss.NewStyle().Faint(true)
	historyDateStyle   = lipgloss.NewStyle().Faint(true)
)

type historyModel struct {
	records    []history.Record
	year       int
	month      time.Month
	scrollY    int
	termHeight int
}

func (m historyModel) visibleRows() int {
	// Reserve lines for: title(1) + separator(1) + footer(1).
	available := m.termHeight - 3
	if available < 1 {
		return 1
	}
	if available > len(m.records) {
		return len(m.records)
	}
	return available
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.scrollY > 0 {
				m.scrollY--
			}
		case "down", "j":
			if m.scrollY < len(m.records)-m.visibleRows() {
				m.scrollY++
			}
		case "home", "g":
			m.scrollY = 0
		case "end", "G":
			m.scrollY = len(m.records) - m.visibleRows()
			if m.scrollY < 0 {
				m.scrollY = 0
			}
		}
	}
	return m, nil
}

func (m historyModel) View() string {
	var b strings.Builder

	b.WriteString(historyHeaderStyle.Render(fmt.Sprintf("Movements - %s %d", m.month, m.year)))
	b.WriteString("\n\n")

	end := m.scrollY + m.visibleRows()
	if end > len(m.records) {
		end = len(m.records)
	}
	for _, r := range m.records[m.scrollY:end] {
		row := fmt.Sprintf("%s  %s  %-12s",
			historyDateStyle.Render(r.Date),
			r.Time,
			kindLabel(r.Kind),
		)
		if r.Message != "" {
			row += "  " + historyDateStyle.Render(r.Message)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(historyFooterStyle.Render(fmt.Sprintf("%d movement(s) · ↑/↓ scroll · q quit", len(m.records))))
	return b.String()
}

// runHistoryView shows the interactive scrollable movement list.
func runHistoryView(records []history.Record, year int, month time.Month) error {
	m := historyModel{
		records:    records,
		year:       year,
		month:      month,
		termHeight: 24,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}
