package attendance

// DeriveState reconciles the server-reported facts with the locally persisted
// state label into the authoritative state.
//
// The backend knows entry and exit but has no notion of "on break", so Paused
// is recoverable only from the persisted label, and only while the backend
// says the user is mid-shift (entry clocked, exit not). Entry/exit facts
// always win: a stale persisted label can never promote the state past what
// the backend reports, and an unparseable label falls through to Working.
func DeriveState(facts Facts, persistedLabel string) State {
	if facts.ExitClocked {
		return Finished
	}
	if facts.EntryClocked {
		if s, ok := ParseState(persistedLabel); ok && s == Paused {
			return Paused
		}
		return Working
	}
	return NotStarted
}
