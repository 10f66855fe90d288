package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

func TestModifier(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5}, {3, -4}, {8, -1}, {9, -1}, {10, 0}, {11, 0}, {12, 1}, {15, 2}, {18, 4}, {20, 5}, {30, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.Modifier(tt.score), "score %d", tt.score)
	}
}

func TestAbility_Names(t *testing.T) {
	assert.Equal(t, "Strength", shared.Strength.Name())
	assert.Equal(t, "CHA", shared.Charisma.Abbreviation())

	a, err := shared.ParseAbility("wis")
	require.NoError(t, err)
	assert.Equal(t, shared.Wisdom, a)

	a, err = shared.ParseAbility("Dexterity")
	require.NoError(t, err)
	assert.Equal(t, shared.Dexterity, a)

	_, err = shared.ParseAbility("luck")
	assert.Error(t, err)
}

func TestSkill_Abilities(t *testing.T) {
	tests := []struct {
		skill   shared.Skill
		ability shared.Ability
		name    string
	}{
		{shared.Athletics, shared.Strength, "Athletics"},
		{shared.SleightOfHand, shared.Dexterity, "Sleight of Hand"},
		{shared.Investigation, shared.Intelligence, "Investigation"},
		{shared.AnimalHandling, shared.Wisdom, "Animal Handling"},
		{shared.Persuasion, shared.Charisma, "Persuasion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ability, tt.skill.Ability())
			assert.Equal(t, tt.name, tt.skill.Name())
		})
	}
	assert.Len(t, shared.Skills, 18)
}

func TestParseSkill(t *testing.T) {
	for _, input := range []string{"Sleight of Hand", "sleight_of_hand", "SleightOfHand"} {
		skill, err := shared.ParseSkill(input)
		require.NoError(t, err, input)
		assert.Equal(t, shared.SleightOfHand, skill)
	}

	_, err := shared.ParseSkill("juggling")
	assert.Error(t, err)
}

func TestParseDamageType(t *testing.T) {
	d, err := shared.ParseDamageType("Fire")
	require.NoError(t, err)
	assert.Equal(t, shared.Fire, d)

	_, err = shared.ParseDamageType("sonic")
	assert.Error(t, err)
}
