package attendance

// State is the user's attendance state for the current day.
// The string values are what gets persisted locally; the backend never
// reports a state directly, only the facts it is derived from.
type State string

const (
	NotStarted State = "NOT_STARTED"
	Working    State = "WORKING"
	Paused     State = "PAUSED"
	Finished   State = "FINISHED"
)

// ParseState parses a persisted state label. Unknown or empty labels return
// ok=false; callers treat those as if no label had been stored.
func ParseState(s string) (State, bool) {
	switch State(s) {
	case NotStarted, Working, Paused, Finished:
		return State(s), true
	}
	return "", false
}

// Movement is one discrete attendance action. The values are the backend's
// wire tokens.
type Movement string

const (
	Entry      Movement = "ENTRADA"
	BreakStart Movement = "PAUSA_INICIO"
	BreakEnd   Movement = "PAUSA_FIN"
	Exit       Movement = "SALIDA"
)

// Label returns a short human-readable name for the movement.
func (m Movement) Label() string {
	switch m {
	case Entry:
		return "clock-in"
	case BreakStart:
		return "break start"
	case BreakEnd:
		return "break end"
	case Exit:
		return "clock-out"
	}
	return string(m)
}

// Facts is the server-authoritative attendance data for the current day,
// re-fetched on every load and never cached.
type Facts struct {
	Date         string
	EntryClocked bool
	EntryTime    string
	ExitClocked  bool
	ExitTime     string
	OnLeave      bool
	LeaveKind    string
	LeaveDesc    string
	Holiday      bool
	HolidayDesc  string
}
