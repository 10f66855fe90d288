package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"REDIS_ADDR", "SQLITE_PATH", "DND5E_API_ENABLED"} {
		t.Setenv(key, "")
	}
	t.Setenv("DICE_SEED", "99")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoll(t *testing.T) {
	first, err := runCLI(t, "", "roll", "2d6+3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "2d6+3: "), first)
	assert.Contains(t, first, "+ 3 = ")

	// Same seed, same result
	second, err := runCLI(t, "", "roll", "2d6", "+3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoll_Errors(t *testing.T) {
	_, err := runCLI(t, "", "roll", "2d")
	require.Error(t, err)

	_, err = runCLI(t, "", "roll")
	require.Error(t, err)
}

func TestSpells(t *testing.T) {
	out, err := runCLI(t, "", "spells", "fire", "bolt")
	require.NoError(t, err)
	assert.Contains(t, out, "Fire Bolt (evocation cantrip)")
	assert.Contains(t, out, "Damage: 1d10 fire")

	_, err = runCLI(t, "", "spells", "wish")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestWorldNew(t *testing.T) {
	out, err := runCLI(t, "", "world", "new", "--name", "Phandalin", "--player", "Mira", "--class", "cleric")
	require.NoError(t, err)
	assert.Contains(t, out, "Phandalin\tMira (level 1 Cleric)")

	_, err = runCLI(t, "", "world", "new", "--name", "Phandalin", "--class", "necromancer")
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = runCLI(t, "", "world", "new")
	assert.Error(t, err)
}

func TestResolve_Errors(t *testing.T) {
	_, err := runCLI(t, `{"type": "Teleport"}`, "resolve", "--world", "w-1")
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = runCLI(t, `{"type": "AdvanceTime", "data": {"minutes": 30}}`, "resolve", "--world", "w-1")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = runCLI(t, `{"type": "AdvanceTime", "data": {"minutes": 30}}`, "resolve")
	assert.Error(t, err)
}
