package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionOutput(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-08-31")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	stdout := new(bytes.Buffer)
	cmd := versionCmd
	cmd.SetOut(stdout)
	cmd.Run(cmd, nil)

	assert.Contains(t, stdout.String(), "staenturno 1.2.3")
	assert.Contains(t, stdout.String(), "abc1234")
	assert.Contains(t, stdout.String(), "2026-08-31")
}
