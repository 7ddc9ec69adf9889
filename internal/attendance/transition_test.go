package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStateTable(t *testing.T) {
	assert.Equal(t, Working, NextState(NotStarted, Entry))
	assert.Equal(t, Paused, NextState(Working, BreakStart))
	assert.Equal(t, Working, NextState(Paused, BreakEnd))
	assert.Equal(t, Finished, NextState(Working, Exit))
	assert.Equal(t, Finished, NextState(Paused, Exit))
}

func TestNextStateUnknownMovementKeepsCurrent(t *testing.T) {
	assert.Equal(t, Working, NextState(Working, Movement("ALMUERZO")))
	assert.Equal(t, NotStarted, NextState(NotStarted, Movement("")))
}

func TestEntryThenExitSkipsPause(t *testing.T) {
	s := NextState(NotStarted, Entry)
	assert.Equal(t, Working, s)

	s = NextState(s, Exit)
	assert.Equal(t, Finished, s)
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(NotStarted, Entry, false))
	assert.False(t, Allowed(Working, Entry, false))
	assert.False(t, Allowed(Finished, Entry, false))

	assert.True(t, Allowed(Working, BreakStart, true))
	assert.False(t, Allowed(Working, BreakStart, false))
	assert.False(t, Allowed(Paused, BreakStart, true))

	assert.True(t, Allowed(Paused, BreakEnd, false))
	assert.False(t, Allowed(Working, BreakEnd, true))

	assert.True(t, Allowed(Working, Exit, false))
	assert.True(t, Allowed(Paused, Exit, false))
	assert.False(t, Allowed(NotStarted, Exit, false))
	assert.False(t, Allowed(Finished, Exit, false))
}

func TestAllowedMovements(t *testing.T) {
	assert.Equal(t, []Movement{Entry}, AllowedMovements(NotStarted, true))
	assert.Equal(t, []Movement{BreakStart, Exit}, AllowedMovements(Working, true))
	assert.Equal(t, []Movement{Exit}, AllowedMovements(Working, false))
	assert.Equal(t, []Movement{BreakEnd, Exit}, AllowedMovements(Paused, true))
	assert.Empty(t, AllowedMovements(Finished, true))
}
