package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func wizardWorld() *world.GameWorld {
	return world.New("Test", character.NewSampleWizard("Elminster"))
}

func TestCastSpell_CantripUsesNoSlot(t *testing.T) {
	e, roller := newEngine(15, 7)
	w := wizardWorld()

	res := resolveAndApply(t, e, w, intents.CastSpell{SpellName: "fire bolt", TargetNames: []string{"Orc"}})

	assert.Equal(t, []effects.Kind{effects.KindDiceRolled, effects.KindAttackHit, effects.KindDiceRolled}, res.Kinds())
	assert.Contains(t, res.Narrative, "Elminster casts Fire Bolt!")
	assert.Contains(t, res.Narrative, "ranged spell attack against Orc: 20 vs AC 10")
	assert.Contains(t, res.Narrative, "Deals 7 fire damage.")
	assert.False(t, res.Has(effects.KindSpellSlotUsed))
	assert.Equal(t, 2, w.Player.Spellcasting.Slots.Available(1))
	assert.Zero(t, roller.Remaining())
}

func TestCastSpell_SlotsRunOut(t *testing.T) {
	e, roller := newEngine(1, 2, 3, 4, 1, 2)
	w := wizardWorld()
	require.Equal(t, 2, w.Player.Spellcasting.Slots.Available(1))

	first := resolveAndApply(t, e, w, intents.CastSpell{SpellName: "Magic Missile", TargetNames: []string{"Goblin"}})
	assert.Contains(t, first.Narrative, "casts Magic Missile (level 1 slot)!")
	assert.Contains(t, first.Narrative, "Goblin takes 9 force damage.")
	assert.Equal(t, 1, w.Player.Spellcasting.Slots.Available(1))

	second := resolveAndApply(t, e, w, intents.CastSpell{SpellName: "Magic Missile"})
	assert.Contains(t, second.Narrative, "target takes 10 force damage.")
	assert.Equal(t, 0, w.Player.Spellcasting.Slots.Available(1))

	third := e.Resolve(w, intents.CastSpell{SpellName: "Magic Missile"})
	assert.True(t, third.Rejected())
	assert.Contains(t, third.Narrative, "Elminster has no level 1 spell slots remaining!")
	assert.Zero(t, roller.Remaining())
}

func TestCastSpell_SaveSpell(t *testing.T) {
	e, _ := newEngine(6, 5, 4)
	w := wizardWorld()

	res := e.Resolve(w, intents.CastSpell{SpellName: "Burning Hands"})

	assert.Contains(t, res.Narrative, "Targets must make a DC 13 Dexterity saving throw (half damage on success).")
	assert.Contains(t, res.Narrative, "On a failed save: 15 fire damage.")
	assert.True(t, res.Has(effects.KindSpellSlotUsed))
}

func TestCastSpell_Upcast(t *testing.T) {
	e, roller := newEngine(1, 1, 1, 1)
	w := classWorld(rulebook.Sorcerer, 3)
	level2 := w.Player.Spellcasting.Slots.Available(2)
	require.Positive(t, level2)

	res := resolveAndApply(t, e, w, intents.CastSpell{SpellName: "Burning Hands", SpellLevel: 2})

	assert.Contains(t, res.Narrative, "(upcast at level 2)")
	assert.Contains(t, res.Narrative, "On a failed save: 4 fire damage.")
	assert.Equal(t, level2-1, w.Player.Spellcasting.Slots.Available(2))
	assert.Zero(t, roller.Remaining())
}

func TestCastSpell_Healing(t *testing.T) {
	e, _ := newEngine(5)
	w := world.New("Test", character.NewSampleCleric("Tomas"))

	res := e.Resolve(w, intents.CastSpell{SpellName: "Cure Wounds", TargetNames: []string{"Roland"}})

	assert.Contains(t, res.Narrative, "Tomas heals Roland for 8 HP.")
}

func TestCastSpell_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		world  func() *world.GameWorld
		intent intents.CastSpell
		want   string
	}{
		{
			name:   "unknown spell",
			world:  wizardWorld,
			intent: intents.CastSpell{SpellName: "Chaos Bolt of Doom"},
			want:   "Unknown spell: 'Chaos Bolt of Doom'",
		},
		{
			name:   "slot below the spell level",
			world:  wizardWorld,
			intent: intents.CastSpell{SpellName: "Fireball", SpellLevel: 2},
			want:   "requires at least level 3",
		},
		{
			name:   "no slot of that level",
			world:  wizardWorld,
			intent: intents.CastSpell{SpellName: "Magic Missile", SpellLevel: 2},
			want:   "no level 2 spell slots remaining",
		},
		{
			name:   "not a caster",
			world:  fighterWorld,
			intent: intents.CastSpell{SpellName: "Magic Missile"},
			want:   "doesn't have spellcasting ability",
		},
		{
			name: "raging",
			world: func() *world.GameWorld {
				w := wizardWorld()
				w.Player.Resources.StartRage(2)
				return w
			},
			intent: intents.CastSpell{SpellName: "Fire Bolt"},
			want:   "cannot cast spells while raging",
		},
		{
			name: "wild shaped",
			world: func() *world.GameWorld {
				w := wizardWorld()
				w.Player.Resources.WildShapeForm = "Cat"
				return w
			},
			intent: intents.CastSpell{SpellName: "Fire Bolt"},
			want:   "cannot cast spells while in Wild Shape form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine()
			res := e.Resolve(tt.world(), tt.intent)
			assert.True(t, res.Rejected())
			assert.Empty(t, res.Effects)
			assert.Contains(t, res.Narrative, tt.want)
		})
	}
}

func TestRestoreSpellSlot(t *testing.T) {
	e, _ := newEngine()
	w := wizardWorld()

	full := e.Resolve(w, intents.RestoreSpellSlot{SlotLevel: 1, Source: "Arcane Recovery"})
	assert.Contains(t, full.Narrative, "no expended level 1 spell slots to restore")

	w.Player.Spellcasting.Slots.Use(1)
	res := resolveAndApply(t, e, w, intents.RestoreSpellSlot{SlotLevel: 1, Source: "Arcane Recovery"})

	assert.Equal(t, "Level 1 spell slot restored by Arcane Recovery", res.Narrative)
	assert.Equal(t, 2, w.Player.Spellcasting.Slots.Available(1))

	bad := e.Resolve(w, intents.RestoreSpellSlot{SlotLevel: 10})
	assert.Contains(t, bad.Narrative, "Invalid spell slot level: 10")
}
