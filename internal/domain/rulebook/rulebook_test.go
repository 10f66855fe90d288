package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

func TestClass_HitDie(t *testing.T) {
	tests := []struct {
		class   rulebook.Class
		die     int
		average int
	}{
		{rulebook.Barbarian, 12, 7},
		{rulebook.Fighter, 10, 6},
		{rulebook.Rogue, 8, 5},
		{rulebook.Wizard, 6, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.die, tt.class.HitDie())
			assert.Equal(t, tt.average, tt.class.HitDieAverage())
		})
	}
}

func TestClass_SpellSlotsAtLevel(t *testing.T) {
	assert.Equal(t, [9]int{2}, rulebook.Wizard.SpellSlotsAtLevel(1))
	assert.Equal(t, [9]int{4, 3, 2}, rulebook.Cleric.SpellSlotsAtLevel(5))
	assert.Equal(t, [9]int{}, rulebook.Paladin.SpellSlotsAtLevel(1))
	assert.Equal(t, [9]int{2}, rulebook.Paladin.SpellSlotsAtLevel(2))
	assert.Equal(t, [9]int{}, rulebook.Fighter.SpellSlotsAtLevel(10))
	assert.Equal(t, [9]int{0, 2}, rulebook.Warlock.SpellSlotsAtLevel(3))
}

func TestRageScaling(t *testing.T) {
	assert.Equal(t, 2, rulebook.RageUses(1))
	assert.Equal(t, 3, rulebook.RageUses(3))
	assert.Equal(t, 6, rulebook.RageUses(19))
	assert.Equal(t, rulebook.UnlimitedUses, rulebook.RageUses(20))

	assert.Equal(t, 2, rulebook.RageDamageBonus(8))
	assert.Equal(t, 3, rulebook.RageDamageBonus(9))
	assert.Equal(t, 4, rulebook.RageDamageBonus(16))
}

func TestProficiencyAndExperience(t *testing.T) {
	assert.Equal(t, 2, rulebook.ProficiencyBonus(1))
	assert.Equal(t, 3, rulebook.ProficiencyBonus(5))
	assert.Equal(t, 6, rulebook.ProficiencyBonus(20))

	assert.Equal(t, 1, rulebook.LevelForExperience(299))
	assert.Equal(t, 2, rulebook.LevelForExperience(300))
	assert.Equal(t, 20, rulebook.LevelForExperience(1_000_000))
}

func TestParseClass(t *testing.T) {
	c, err := rulebook.ParseClass(" Fighter ")
	require.NoError(t, err)
	assert.Equal(t, rulebook.Fighter, c)

	_, err = rulebook.ParseClass("artificer")
	assert.Error(t, err)
}

func TestSpell_EffectiveDamage(t *testing.T) {
	fireBolt := &rulebook.Spell{
		Name:       "Fire Bolt",
		DamageDice: "1d10",
		Scaling:    rulebook.DamageScaling{Kind: rulebook.ScalingCantrip},
	}
	fireball := &rulebook.Spell{
		Name:       "Fireball",
		Level:      3,
		DamageDice: "8d6",
		Scaling:    rulebook.DamageScaling{Kind: rulebook.ScalingPerSlot, ExtraDice: "1d6"},
	}

	tests := []struct {
		name        string
		spell       *rulebook.Spell
		casterLevel int
		slot        int
		want        string
	}{
		{"cantrip tier one", fireBolt, 1, 0, "1d10"},
		{"cantrip tier two", fireBolt, 5, 0, "2d10"},
		{"cantrip tier four", fireBolt, 17, 0, "4d10"},
		{"base slot", fireball, 5, 3, "8d6"},
		{"upcast twice", fireball, 9, 5, "10d6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ok := tt.spell.EffectiveDamage(tt.casterLevel, tt.slot)
			require.True(t, ok)
			assert.Equal(t, tt.want, expr.String())
		})
	}

	_, ok := (&rulebook.Spell{Name: "Light"}).EffectiveDamage(1, 0)
	assert.False(t, ok)
}

func TestSpell_EffectiveHealing(t *testing.T) {
	cure := &rulebook.Spell{
		Name:        "Cure Wounds",
		Level:       1,
		HealingDice: "1d8",
		Scaling:     rulebook.DamageScaling{Kind: rulebook.ScalingPerSlot, ExtraDice: "1d8"},
	}

	expr, ok := cure.EffectiveHealing(3)
	require.True(t, ok)
	assert.Equal(t, "3d8", expr.String())
}

func TestComponents_String(t *testing.T) {
	c := rulebook.Components{Verbal: true, Somatic: true, Material: "a holy symbol"}
	assert.Equal(t, "V, S, M (a holy symbol)", c.String())
}

func TestArmor_AC(t *testing.T) {
	leather := &rulebook.Armor{Type: rulebook.ArmorLight, BaseAC: 11}
	scale := &rulebook.Armor{Type: rulebook.ArmorMedium, BaseAC: 14}
	plate := &rulebook.Armor{Type: rulebook.ArmorHeavy, BaseAC: 18}

	assert.Equal(t, 15, leather.AC(4))
	assert.Equal(t, 16, scale.AC(4))
	assert.Equal(t, 18, plate.AC(4))
	assert.Equal(t, 14, rulebook.DefaultArmor("Mystery Mail").AC(0))
}

func TestDefaultsAndParsing(t *testing.T) {
	w := rulebook.DefaultWeapon("Odd Blade")
	assert.Equal(t, "1d8", w.DamageDice)
	assert.Equal(t, shared.Slashing, w.DamageType)

	assert.Equal(t, rulebook.ItemGear, rulebook.ParseItemType("gear"))
	assert.Equal(t, rulebook.ItemPotion, rulebook.ParseItemType("Potion"))
	assert.Equal(t, rulebook.ItemOther, rulebook.ParseItemType("doohickey"))

	p := &rulebook.Potion{HealingDice: "4d4", HealingBonus: 4}
	assert.Equal(t, "4d4+4", p.HealingNotation())
	assert.Equal(t, "2d4+2", (&rulebook.Potion{}).HealingNotation())
}
