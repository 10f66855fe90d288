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

func classWorld(class rulebook.Class, level int) *world.GameWorld {
	return world.New("Test", character.NewSample("Hero", class, level))
}

func TestRage_UsesRunOut(t *testing.T) {
	e, _ := newEngine()
	w := world.New("Test", character.NewSampleBarbarian("Grog"))
	rage := w.Player.Features.Find(character.RageFeature)
	require.NotNil(t, rage)
	require.Equal(t, 2, rage.Uses.Current)

	res := resolveAndApply(t, e, w, intents.UseRage{})
	assert.Contains(t, res.Narrative, "enters a RAGE")
	assert.True(t, w.Player.Resources.RageActive)
	assert.Equal(t, 1, rage.Uses.Current)

	again := e.Resolve(w, intents.UseRage{})
	assert.Contains(t, again.Narrative, "already raging")

	resolveAndApply(t, e, w, intents.EndRage{Reason: "voluntary"})
	assert.False(t, w.Player.Resources.RageActive)

	resolveAndApply(t, e, w, intents.UseRage{})
	resolveAndApply(t, e, w, intents.EndRage{})
	assert.Equal(t, 0, rage.Uses.Current)

	out := e.Resolve(w, intents.UseRage{})
	assert.True(t, out.Rejected())
	assert.Contains(t, out.Narrative, "no rage uses remaining")
}

func TestRage_NonBarbarianRejected(t *testing.T) {
	e, _ := newEngine()
	res := e.Resolve(fighterWorld(), intents.UseRage{})
	assert.Contains(t, res.Narrative, "is not a barbarian")
}

func TestRage_EndsAfterTenTurns(t *testing.T) {
	e, _ := newEngine()
	w := world.New("Test", character.NewSampleBarbarian("Grog"))
	resolveAndApply(t, e, w, intents.StartCombat{})
	resolveAndApply(t, e, w, intents.UseRage{})

	for i := 0; i < character.RageRounds; i++ {
		require.True(t, w.Player.Resources.RageActive, "turn %d", i)
		e.ApplyEffect(w, effects.TurnAdvanced{})
	}
	assert.False(t, w.Player.Resources.RageActive)
}

func TestUseKi(t *testing.T) {
	e, _ := newEngine()
	w := classWorld(rulebook.Monk, 3)
	require.Equal(t, 3, w.Player.Resources.KiPoints)

	res := resolveAndApply(t, e, w, intents.UseKi{Points: 2, Ability: "flurry_of_blows"})
	assert.Contains(t, res.Narrative, "spends 2 ki points. Flurry of Blows")
	assert.Equal(t, 1, w.Player.Resources.KiPoints)

	short := e.Resolve(w, intents.UseKi{Points: 2, Ability: "stunning_strike"})
	assert.Contains(t, short.Narrative, "Has 1 but needs 2")

	zero := e.Resolve(w, intents.UseKi{Points: 0})
	assert.Contains(t, zero.Narrative, "Invalid ki cost")
}

func TestUseLayOnHands(t *testing.T) {
	e, _ := newEngine()
	w := classWorld(rulebook.Paladin, 2)
	require.Equal(t, 10, w.Player.Resources.LayOnHandsPool)
	w.Player.HitPoints.Current = w.Player.HitPoints.Maximum - 5
	before := w.Player.HitPoints.Current

	res := resolveAndApply(t, e, w, intents.UseLayOnHands{HPAmount: 3, CureDisease: true})

	assert.Contains(t, res.Narrative, "restores 3 HP, cures one disease")
	assert.Contains(t, res.Narrative, "(2 HP remaining in pool)")
	assert.Equal(t, 2, w.Player.Resources.LayOnHandsPool)
	assert.Equal(t, before+3, w.Player.HitPoints.Current)

	tooMuch := e.Resolve(w, intents.UseLayOnHands{NeutralizePoison: true})
	assert.Contains(t, tooMuch.Narrative, "Has 2 HP but needs 5")

	nothing := e.Resolve(w, intents.UseLayOnHands{})
	assert.True(t, nothing.Rejected())
}

func TestUseLayOnHands_UnknownTarget(t *testing.T) {
	e, _ := newEngine()
	w := classWorld(rulebook.Paladin, 2)

	res := resolveAndApply(t, e, w, intents.UseLayOnHands{TargetName: "Stranger", HPAmount: 4})

	assert.True(t, res.Rejected())
	assert.Contains(t, res.Narrative, "not found")
	assert.Equal(t, 10, w.Player.Resources.LayOnHandsPool, "pool is not charged")

	// Curing needs no heal target
	cured := resolveAndApply(t, e, w, intents.UseLayOnHands{TargetName: "Stranger", CureDisease: true})
	assert.False(t, cured.Rejected())
	assert.Equal(t, 5, w.Player.Resources.LayOnHandsPool)
}

func TestUseDivineSmite(t *testing.T) {
	tests := []struct {
		name       string
		faces      []int
		undead     bool
		wantDamage string
	}{
		{name: "two dice", faces: []int{3, 5}, wantDamage: "2d8 = 8 radiant"},
		{name: "extra die vs undead", faces: []int{3, 5, 8}, undead: true, wantDamage: "3d8 = 16 radiant damage (extra damage vs undead/fiend)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, roller := newEngine(tt.faces...)
			w := classWorld(rulebook.Paladin, 2)
			slots := w.Player.Spellcasting.Slots.Available(1)

			res := resolveAndApply(t, e, w, intents.UseDivineSmite{SpellSlotLevel: 1, TargetIsUndeadOrFiend: tt.undead})

			assert.Contains(t, res.Narrative, tt.wantDamage)
			assert.Equal(t, slots-1, w.Player.Spellcasting.Slots.Available(1))
			assert.Zero(t, roller.Remaining())
		})
	}
}

func TestUseDivineSmite_NoSlot(t *testing.T) {
	e, _ := newEngine()
	w := classWorld(rulebook.Paladin, 2)

	res := e.Resolve(w, intents.UseDivineSmite{SpellSlotLevel: 2})
	assert.Contains(t, res.Narrative, "no level 2 spell slots remaining")
}

func TestWildShape(t *testing.T) {
	e, _ := newEngine()
	w := classWorld(rulebook.Druid, 2)
	ac := 13

	res := resolveAndApply(t, e, w, intents.UseWildShape{BeastForm: "Wolf", BeastHP: 11, BeastAC: &ac})
	assert.Contains(t, res.Narrative, "transforms into a Wolf! Beast form has 11 HP and AC 13. Duration: 1 hour.")
	assert.Equal(t, "Wolf", w.Player.Resources.WildShapeForm)
	assert.Equal(t, 1, w.Player.Resources.WildShapeUses)
	assert.Equal(t, 1, w.Player.Features.Find("Wild Shape").Uses.Current)

	again := e.Resolve(w, intents.UseWildShape{BeastForm: "Bear", BeastHP: 34})
	assert.Contains(t, again.Narrative, "already in Wild Shape form")

	hp := w.Player.HitPoints.Current
	end := resolveAndApply(t, e, w, intents.EndWildShape{Reason: "hp_zero", ExcessDamage: 4})
	assert.Contains(t, end.Narrative, "4 excess damage carries over")
	assert.Empty(t, w.Player.Resources.WildShapeForm)
	assert.Nil(t, w.Player.Resources.WildShapeHP)
	assert.Equal(t, hp-4, w.Player.HitPoints.Current)
}

func TestWildShape_InvalidForm(t *testing.T) {
	e, _ := newEngine()
	res := e.Resolve(classWorld(rulebook.Druid, 2), intents.UseWildShape{BeastForm: "Wolf"})
	assert.Contains(t, res.Narrative, "Invalid beast form")
}

func TestChannelDivinity(t *testing.T) {
	e, _ := newEngine()

	low := e.Resolve(classWorld(rulebook.Cleric, 1), intents.UseChannelDivinity{Option: "turn undead"})
	assert.Contains(t, low.Narrative, "does not have Channel Divinity")

	w := classWorld(rulebook.Cleric, 2)
	res := resolveAndApply(t, e, w, intents.UseChannelDivinity{Option: "Turn Undead", Targets: []string{"Zombie", "Ghoul"}})
	assert.Contains(t, res.Narrative, "uses Channel Divinity: Turn Undead")
	assert.Contains(t, res.Narrative, "Targets: Zombie, Ghoul.")
	assert.True(t, w.Player.Resources.ChannelDivinityUsed)

	spent := e.Resolve(w, intents.UseChannelDivinity{Option: "turn undead"})
	assert.Contains(t, spent.Narrative, "no Channel Divinity uses remaining")

	resolveAndApply(t, e, w, intents.ShortRest{})
	assert.False(t, w.Player.Resources.ChannelDivinityUsed)
	assert.Equal(t, 1, w.Player.Features.Find("Channel Divinity").Uses.Current)
}

func TestBardicInspiration(t *testing.T) {
	e, _ := newEngine()
	w := classWorld(rulebook.Bard, 1)
	require.Equal(t, 2, w.Player.Resources.BardicInspiration)

	res := resolveAndApply(t, e, w, intents.UseBardicInspiration{TargetName: "Roland"})
	assert.Contains(t, res.Narrative, "Roland gains a d6 Bardic Inspiration die")
	assert.Equal(t, 1, w.Player.Resources.BardicInspiration)

	noTarget := e.Resolve(w, intents.UseBardicInspiration{})
	assert.Contains(t, noTarget.Narrative, "needs someone to inspire")

	resolveAndApply(t, e, w, intents.UseBardicInspiration{TargetName: "Roland", DieSize: "d8"})
	empty := e.Resolve(w, intents.UseBardicInspiration{TargetName: "Roland"})
	assert.Contains(t, empty.Narrative, "no Bardic Inspiration uses remaining")
}

func TestActionSurge(t *testing.T) {
	e, _ := newEngine()

	first := e.Resolve(fighterWorld(), intents.UseActionSurge{ActionTaken: "Attack"})
	assert.Contains(t, first.Narrative, "does not have Action Surge")

	w := classWorld(rulebook.Fighter, 2)
	res := resolveAndApply(t, e, w, intents.UseActionSurge{ActionTaken: "Dash"})
	assert.Contains(t, res.Narrative, "Takes an additional action this turn: Dash")
	assert.True(t, w.Player.Resources.ActionSurgeUsed)

	again := e.Resolve(w, intents.UseActionSurge{ActionTaken: "Attack"})
	assert.Contains(t, again.Narrative, "already used Action Surge")
}

func TestSecondWind(t *testing.T) {
	e, roller := newEngine(6)
	w := fighterWorld()
	w.Player.HitPoints.Current = 10

	res := resolveAndApply(t, e, w, intents.UseSecondWind{})

	assert.Contains(t, res.Narrative, "Regains 1d10+1 = 7 HP. (Now at 17/28)")
	assert.Equal(t, 17, w.Player.HitPoints.Current)
	assert.True(t, w.Player.Resources.SecondWindUsed)
	assert.Zero(t, roller.Remaining())

	again := e.Resolve(w, intents.UseSecondWind{})
	assert.Contains(t, again.Narrative, "already used Second Wind")
}

func TestSorceryPoints(t *testing.T) {
	level := func(n int) *int { return &n }

	t.Run("metamagic spends points", func(t *testing.T) {
		e, _ := newEngine()
		w := classWorld(rulebook.Sorcerer, 3)
		require.Equal(t, 3, w.Player.Resources.SorceryPoints)

		res := resolveAndApply(t, e, w, intents.UseSorceryPoints{Points: 2, Metamagic: "quickened", SpellName: "Fire Bolt"})
		assert.Contains(t, res.Narrative, "uses Quickened Spell: Cast as a bonus action instead of an action on Fire Bolt (2 sorcery points).")
		assert.Equal(t, 1, w.Player.Resources.SorceryPoints)

		short := e.Resolve(w, intents.UseSorceryPoints{Points: 2, Metamagic: "twinned"})
		assert.Contains(t, short.Narrative, "Has 1 but needs 2")
	})

	t.Run("slot converts to points up to the maximum", func(t *testing.T) {
		e, _ := newEngine()
		w := classWorld(rulebook.Sorcerer, 3)
		w.Player.Resources.SorceryPoints = 1
		slots := w.Player.Spellcasting.Slots.Available(1)

		resolveAndApply(t, e, w, intents.UseSorceryPoints{Metamagic: "convert_from_slot", SlotLevel: level(1)})

		assert.Equal(t, 2, w.Player.Resources.SorceryPoints)
		assert.Equal(t, slots-1, w.Player.Spellcasting.Slots.Available(1))
	})

	t.Run("points refill an expended slot", func(t *testing.T) {
		e, _ := newEngine()
		w := classWorld(rulebook.Sorcerer, 3)

		full := e.Resolve(w, intents.UseSorceryPoints{Metamagic: "convert_to_slot", SlotLevel: level(1)})
		assert.Contains(t, full.Narrative, "no expended level 1 slot")

		w.Player.Spellcasting.Slots.Use(1)
		slots := w.Player.Spellcasting.Slots.Available(1)
		resolveAndApply(t, e, w, intents.UseSorceryPoints{Metamagic: "convert_to_slot", SlotLevel: level(1)})

		assert.Equal(t, 2, w.Player.Resources.SorceryPoints)
		assert.Equal(t, slots+1, w.Player.Spellcasting.Slots.Available(1))
	})

	t.Run("conversion needs a valid level", func(t *testing.T) {
		e, _ := newEngine()
		res := e.Resolve(classWorld(rulebook.Sorcerer, 3), intents.UseSorceryPoints{Metamagic: "convert_to_slot", SlotLevel: level(7)})
		assert.Contains(t, res.Narrative, "pick a level from 1 to 5")
	})
}
