package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/chronicler/internal/dice/mock"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
	"github.com/KirkDiggler/chronicler/internal/rules"
	"github.com/KirkDiggler/chronicler/internal/uuid"
)

// newEngine builds an engine that rolls the given faces in order
func newEngine(faces ...int) (rules.Engine, *mockdice.ManualMockRoller) {
	roller := mockdice.NewManualMockRoller(faces...)
	return rules.NewEngine(&rules.EngineConfig{
		Roller:        roller,
		UUIDGenerator: uuid.NewSequenceGenerator("id"),
	}), roller
}

func fighterWorld() *world.GameWorld {
	return world.New("Test", character.NewSampleFighter("Roland"))
}

// resolveAndApply commits a resolution the way a host would
func resolveAndApply(t *testing.T, e rules.Engine, w *world.GameWorld, intent intents.Intent) effects.Resolution {
	t.Helper()
	res := e.Resolve(w, intent)
	e.Apply(w, res.Effects)
	return res
}

func TestResolve_EveryIntentIsHandled(t *testing.T) {
	e := rules.NewEngine(&rules.EngineConfig{UUIDGenerator: uuid.NewSequenceGenerator("id")})

	for _, kind := range intents.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			intent, ok := intents.New(kind)
			require.True(t, ok)

			res := e.Resolve(fighterWorld(), intent)
			assert.False(t, strings.HasPrefix(res.Narrative, "Unsupported action"), res.Narrative)
			assert.NotEmpty(t, res.Narrative)
		})
	}
}

func TestApplyEffect_EveryEffectIsSafeOnZeroValues(t *testing.T) {
	e, _ := newEngine()

	for _, kind := range effects.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			eff, ok := effects.New(kind)
			require.True(t, ok)

			w := fighterWorld()
			assert.NotPanics(t, func() { e.ApplyEffect(w, eff) })
		})
	}
}

func TestResolve_NilWorld(t *testing.T) {
	e, _ := newEngine()
	res := e.Resolve(nil, intents.ShortRest{})
	assert.True(t, res.Rejected())
}

func TestResolve_DoesNotMutateWorld(t *testing.T) {
	rounds := 3
	tests := []struct {
		name   string
		faces  []int
		intent intents.Intent
	}{
		{name: "attack", faces: []int{15, 6}, intent: intents.Attack{TargetID: "goblin-1"}},
		{name: "damage", intent: intents.Damage{Amount: 10, Source: "Goblin"}},
		{name: "heal", intent: intents.Heal{Amount: 5, Source: "Potion"}},
		{name: "condition", intent: intents.ApplyCondition{Condition: "poisoned", Source: "Trap", DurationRounds: &rounds}},
		{name: "start combat", faces: []int{12}, intent: intents.StartCombat{Combatants: []intents.CombatantInit{{ID: "goblin-1", Name: "Goblin", CurrentHP: 7, MaxHP: 7, ArmorClass: 15}}}},
		{name: "second wind", faces: []int{4}, intent: intents.UseSecondWind{}},
		{name: "add item", intent: intents.AddItem{ItemName: "Torch", Quantity: 3}},
		{name: "use potion", faces: []int{2, 3}, intent: intents.UseItem{ItemName: "Potion of Healing"}},
		{name: "gold", intent: intents.AdjustGold{Amount: -5, Reason: "Bribe"}},
		{name: "long rest", intent: intents.LongRest{}},
		{name: "experience", intent: intents.GainExperience{Amount: 300}},
		{name: "create npc", intent: intents.CreateNPC{Name: "Mira", Disposition: "friendly"}},
		{name: "create quest", intent: intents.CreateQuest{Name: "Lost Mine", Objectives: []intents.ObjectiveInit{{Description: "Find Gundren"}}}},
		{name: "change location", intent: intents.ChangeLocation{NewLocation: "Phandalin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(tt.faces...)
			w := fighterWorld()
			w.Player.HitPoints.Current = 20
			before := w.Clone()

			res := e.Resolve(w, tt.intent)
			require.False(t, res.Rejected(), res.Narrative)
			assert.Equal(t, before, w.Clone())
		})
	}
}

func TestApply_EmptyListIsNoOp(t *testing.T) {
	e, _ := newEngine()
	w := fighterWorld()
	resolveAndApply(t, e, w, intents.Damage{Amount: 7, Source: "Arrow"})
	before := w.Clone()

	e.Apply(w, nil)
	e.Apply(w, []effects.Effect{})

	assert.Equal(t, before, w.Clone())
}

func TestApply_NarrationEffectsChangeNothing(t *testing.T) {
	e, _ := newEngine()
	w := fighterWorld()
	before := w.Clone()

	e.Apply(w, []effects.Effect{
		effects.DiceRolled{Purpose: "Attack"},
		effects.CheckSucceeded{CheckType: "Athletics", Roll: 15, DC: 10},
		effects.CheckFailed{CheckType: "Stealth", Roll: 3, DC: 10},
		effects.AttackHit{AttackerName: "Roland", TargetName: "Goblin", AttackRoll: 17, TargetAC: 15},
		effects.AttackMissed{AttackerName: "Roland", TargetName: "Goblin", AttackRoll: 4, TargetAC: 15},
		effects.ItemUsed{ItemName: "Scroll", Result: "Scroll consumed"},
		effects.ACChanged{NewAC: 20, Source: "Shield"},
		effects.InitiativeRolled{Name: "Roland", Roll: 12, Total: 14},
		effects.ClassResourceUsed{CharacterName: "Roland", ResourceName: "Second Wind"},
		effects.ConcentrationMaintained{SpellName: "Bless", Roll: 14, DC: 10},
		effects.EventScheduled{Description: "The bell tolls"},
		effects.NPCUpdated{NPCName: "Nobody", Changes: "no changes"},
	})

	assert.Equal(t, before, w.Clone())
}
