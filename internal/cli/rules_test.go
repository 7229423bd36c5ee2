package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesList(t *testing.T) {
	out, err := executeCommand(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "life")
	assert.Contains(t, out, "B3/S23")
	assert.Contains(t, out, "highlife")
	assert.Contains(t, out, "B36/S23")
}

func TestRulesCanonicalize(t *testing.T) {
	out, err := executeCommand(t, "rules", "b863/s32")
	require.NoError(t, err)
	assert.Equal(t, "B368/S23\n", out)
}

func TestRulesResolvePreset(t *testing.T) {
	out, err := executeCommand(t, "rules", "seeds")
	require.NoError(t, err)
	assert.Equal(t, "B2/S\n", out)
}

func TestRulesRejectInvalid(t *testing.T) {
	_, err := executeCommand(t, "rules", "X3/Y2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
