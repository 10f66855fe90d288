package dnd5e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsMissingParam(err))
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Fire Bolt", "fire-bolt"},
		{"  Chain Mail ", "chain-mail"},
		{"Tasha's Hideous Laughter", "tashas-hideous-laughter"},
		{"longsword", "longsword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.name))
		})
	}
}

func TestDiceDelta(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		next  string
		want  string
		found bool
	}{
		{"fireball", "8d6", "9d6", "1d6", true},
		{"scorching ray", "2d6", "4d6", "2d6", true},
		{"no next level", "3d8", "", "", false},
		{"different die", "1d8", "2d6", "", false},
		{"flat", "5", "10", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := diceDelta(tt.base, tt.next)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNotation(t *testing.T) {
	assert.Equal(t, "1d8", normalizeNotation("1d8 + MOD"))
	assert.Equal(t, "3d4+3", normalizeNotation("3d4 + 3"))
}
