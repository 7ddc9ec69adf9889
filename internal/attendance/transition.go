package attendance

// NextState returns the state a successful movement leads to. It is a pure
// table lookup: each movement maps to exactly one resulting state, and an
// unknown movement keeps the current state. Whether the movement was valid
// from the current state is not checked here; that is the dispatcher's job
// via Allowed, before any network call is made.
func NextState(current State, movement Movement) State {
	switch movement {
	case Entry:
		return Working
	case BreakStart:
		return Paused
	case BreakEnd:
		return Working
	case Exit:
		return Finished
	}
	return current
}

// Allowed reports whether the movement may be registered from the current
// state. BreakStart additionally requires the user's shift to permit breaks.
func Allowed(current State, movement Movement, breaksPermitted bool) bool {
	switch movement {
	case Entry:
		return current == NotStarted
	case BreakStart:
		return current == Working && breaksPermitted
	case BreakEnd:
		return current == Paused
	case Exit:
		return current == Working || current == Paused
	}
	return false
}

// AllowedMovements lists the movements currently available to the user, in
// the order they would naturally occur within a day.
func AllowedMovements(current State, breaksPermitted bool) []Movement {
	var out []Movement
	for _, m := range []Movement{Entry, BreakStart, BreakEnd, Exit} {
		if Allowed(current, m, breaksPermitted) {
			out = append(out, m)
		}
	}
	return out
}
