// Package rules turns intents into effects and effects into world changes.
//
// Resolve only reads the world it is given. Apply is the single writer and
// never fails: anything it cannot find is skipped.
package rules

//go:generate mockgen -destination=mock/mock_engine.go -package=mockrules -source=engine.go

import (
	"log"

	"github.com/KirkDiggler/chronicler/internal/catalog"
	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
	"github.com/KirkDiggler/chronicler/internal/uuid"
)

// Engine is the D&D rules kernel
type Engine interface {
	// Resolve works out what an intent does to w without changing it.
	// A rejected intent comes back with no effects and a narrative saying why.
	Resolve(w *world.GameWorld, intent intents.Intent) effects.Resolution

	// Apply writes effects to w in order
	Apply(w *world.GameWorld, effs []effects.Effect)

	// ApplyEffect writes one effect to w
	ApplyEffect(w *world.GameWorld, e effects.Effect)
}

type engine struct {
	roller        dice.Roller
	catalog       catalog.Catalog
	uuidGenerator uuid.Generator
}

// EngineConfig holds the engine's collaborators. All of them are optional.
type EngineConfig struct {
	Roller        dice.Roller
	Catalog       catalog.Catalog
	UUIDGenerator uuid.Generator
}

// NewEngine creates a rules engine
func NewEngine(cfg *EngineConfig) Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	e := &engine{
		roller:        cfg.Roller,
		catalog:       cfg.Catalog,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if e.roller == nil {
		e.roller = dice.NewRandomRoller()
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.uuidGenerator == nil {
		e.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return e
}

// Resolve dispatches to the resolver for the intent's variant
func (e *engine) Resolve(w *world.GameWorld, intent intents.Intent) effects.Resolution {
	if w == nil {
		return effects.Reject("No world to act in.")
	}

	switch i := intent.(type) {
	// checks
	case intents.SkillCheck:
		return e.resolveSkillCheck(w, i)
	case intents.AbilityCheck:
		return e.resolveAbilityCheck(w, i)
	case intents.SavingThrow:
		return e.resolveSavingThrow(w, i)
	case intents.RollDice:
		return e.resolveRollDice(i)
	case intents.Move:
		return e.resolveMove(w, i)

	// combat
	case intents.Attack:
		return e.resolveAttack(w, i)
	case intents.Damage:
		return e.resolveDamage(w, i)
	case intents.Heal:
		return e.resolveHeal(w, i)
	case intents.ApplyCondition:
		return e.resolveApplyCondition(w, i)
	case intents.RemoveCondition:
		return e.resolveRemoveCondition(w, i)
	case intents.StartCombat:
		return e.resolveStartCombat(w, i)
	case intents.EndCombat:
		return e.resolveEndCombat(w)
	case intents.NextTurn:
		return e.resolveNextTurn(w)
	case intents.RollInitiative:
		return e.resolveRollInitiative(w, i)
	case intents.DeathSave:
		return e.resolveDeathSave(w, i)
	case intents.ConcentrationCheck:
		return e.resolveConcentrationCheck(w, i)

	// class features
	case intents.UseRage:
		return e.resolveUseRage(w, i)
	case intents.EndRage:
		return e.resolveEndRage(w, i)
	case intents.UseKi:
		return e.resolveUseKi(w, i)
	case intents.UseLayOnHands:
		return e.resolveUseLayOnHands(w, i)
	case intents.UseDivineSmite:
		return e.resolveUseDivineSmite(w, i)
	case intents.UseWildShape:
		return e.resolveUseWildShape(w, i)
	case intents.EndWildShape:
		return e.resolveEndWildShape(w, i)
	case intents.UseChannelDivinity:
		return e.resolveUseChannelDivinity(w, i)
	case intents.UseBardicInspiration:
		return e.resolveUseBardicInspiration(w, i)
	case intents.UseActionSurge:
		return e.resolveUseActionSurge(w, i)
	case intents.UseSecondWind:
		return e.resolveUseSecondWind(w, i)
	case intents.UseSorceryPoints:
		return e.resolveUseSorceryPoints(w, i)

	// inventory
	case intents.AddItem:
		return e.resolveAddItem(w, i)
	case intents.RemoveItem:
		return e.resolveRemoveItem(w, i)
	case intents.EquipItem:
		return e.resolveEquipItem(w, i)
	case intents.UnequipItem:
		return e.resolveUnequipItem(w, i)
	case intents.UseItem:
		return e.resolveUseItem(w, i)
	case intents.AdjustGold:
		return e.resolveAdjustGold(w, i)
	case intents.AdjustSilver:
		return e.resolveAdjustSilver(w, i)

	// time and progress
	case intents.ShortRest:
		return e.resolveShortRest(w)
	case intents.LongRest:
		return e.resolveLongRest(w)
	case intents.AdvanceTime:
		return e.resolveAdvanceTime(i)
	case intents.GainExperience:
		return e.resolveGainExperience(w, i)
	case intents.UseFeature:
		return e.resolveUseFeature(w, i)
	case intents.ModifyAbilityScore:
		return e.resolveModifyAbilityScore(i)
	case intents.RememberFact:
		return e.resolveRememberFact(i)
	case intents.RegisterConsequence:
		return e.resolveRegisterConsequence(i)

	// quests
	case intents.CreateQuest:
		return e.resolveCreateQuest(w, i)
	case intents.AddQuestObjective:
		return e.resolveAddQuestObjective(w, i)
	case intents.CompleteObjective:
		return e.resolveCompleteObjective(w, i)
	case intents.CompleteQuest:
		return e.resolveCompleteQuest(w, i)
	case intents.FailQuest:
		return e.resolveFailQuest(w, i)
	case intents.UpdateQuest:
		return e.resolveUpdateQuest(w, i)

	// spells
	case intents.CastSpell:
		return e.resolveCastSpell(w, i)
	case intents.RestoreSpellSlot:
		return e.resolveRestoreSpellSlot(w, i)

	// world building
	case intents.ChangeLocation:
		return e.resolveChangeLocation(w, i)
	case intents.CreateNPC:
		return e.resolveCreateNPC(w, i)
	case intents.UpdateNPC:
		return e.resolveUpdateNPC(w, i)
	case intents.MoveNPC:
		return e.resolveMoveNPC(w, i)
	case intents.RemoveNPC:
		return e.resolveRemoveNPC(w, i)
	case intents.CreateLocation:
		return e.resolveCreateLocation(w, i)
	case intents.ConnectLocations:
		return e.resolveConnectLocations(w, i)
	case intents.UpdateLocation:
		return e.resolveUpdateLocation(w, i)
	case intents.AssertState:
		return e.resolveAssertState(w, i)
	case intents.ShareKnowledge:
		return e.resolveShareKnowledge(i)
	case intents.ScheduleEvent:
		return e.resolveScheduleEvent(i)
	case intents.CancelEvent:
		return e.resolveCancelEvent(i)

	default:
		log.Printf("Rules: unhandled intent %T", intent)
		return effects.Reject("Unsupported action: %T", intent)
	}
}

// actor returns the player when id names them. An empty id means the player.
func (e *engine) actor(w *world.GameWorld, id string) (*character.Character, effects.Resolution, bool) {
	if w.Player == nil {
		return nil, effects.Reject("No player character in this world."), false
	}
	if isPlayer(w, id) {
		return w.Player, effects.Resolution{}, true
	}
	return nil, effects.Reject("Character '%s' not found.", id), false
}

// isPlayer matches the player by id or by name
func isPlayer(w *world.GameWorld, id string) bool {
	if w.Player == nil {
		return false
	}
	return id == "" || id == w.Player.ID || world.SameName(id, w.Player.Name)
}

// rollD20 rolls 1d20+mod. A roller failure degrades to the fallback roll.
func (e *engine) rollD20(mod int, mode dice.Advantage) *dice.Result {
	expr := dice.MustParse("1d20").AddModifier(mod)
	result, err := expr.RollWithAdvantage(e.roller, mode)
	if err != nil {
		log.Printf("Rules: d20 roll failed (%v), falling back", err)
		return dice.RollWithFallback(e.roller, expr.String(), "1d20")
	}
	return result
}

// rollExpr rolls a prepared expression, degrading the same way
func (e *engine) rollExpr(expr dice.Expression, fallback string) *dice.Result {
	result, err := expr.Roll(e.roller)
	if err != nil {
		log.Printf("Rules: could not roll %s (%v), using %q", expr.String(), err, fallback)
		return dice.RollWithFallback(e.roller, fallback, fallback)
	}
	return result
}

// rollNotation rolls untrusted notation, never failing
func (e *engine) rollNotation(notation, fallback string) *dice.Result {
	return dice.RollWithFallback(e.roller, notation, fallback)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
