package rules

import (
	"fmt"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

// physical abilities are the ones an unconscious creature automatically fails
func physical(a shared.Ability) bool {
	return a == shared.Strength || a == shared.Dexterity
}

func checkOutcome(checkType string, roll *dice.Result, dc int) effects.Effect {
	if roll.Total >= dc {
		return effects.CheckSucceeded{CheckType: checkType, Roll: roll.Total, DC: dc}
	}
	return effects.CheckFailed{CheckType: checkType, Roll: roll.Total, DC: dc}
}

func verb(success bool) string {
	if success {
		return "succeeds"
	}
	return "fails"
}

func purpose(label, description string) string {
	if description == "" {
		return label
	}
	return fmt.Sprintf("%s - %s", label, description)
}

func (e *engine) resolveSkillCheck(w *world.GameWorld, i intents.SkillCheck) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if !i.Skill.Valid() {
		return effects.Reject("Invalid skill: '%s'.", i.Skill)
	}

	name := i.Skill.Name()
	if c.IsUnconscious() && physical(i.Skill.Ability()) {
		return effects.NewBuilder("%s is unconscious and automatically fails the %s check!", c.Name, name).
			Add(effects.CheckFailed{CheckType: name, DC: i.DC}).
			Build()
	}

	mode := i.Advantage
	note := ""
	if i.Skill == shared.Stealth && c.Equipment.Armor != nil && c.Equipment.Armor.StealthDisadvantage {
		combined := mode.Combine(dice.WithDisadvantage)
		if combined != mode && combined == dice.WithDisadvantage {
			note = " [armor disadvantage]"
		}
		mode = combined
	}

	roll := e.rollD20(c.SkillModifier(i.Skill), mode)
	success := roll.Total >= i.DC

	return effects.NewBuilder("%s %s (%s check: %d vs DC %d)%s", c.Name, verb(success), name, roll.Total, i.DC, note).
		Add(
			effects.DiceRolled{Roll: roll, Purpose: purpose(name+" check", i.Description)},
			checkOutcome(name, roll, i.DC),
		).
		Build()
}

func (e *engine) resolveAbilityCheck(w *world.GameWorld, i intents.AbilityCheck) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if !i.Ability.Valid() {
		return effects.Reject("Invalid ability: '%s'.", i.Ability)
	}

	abbr := i.Ability.Abbreviation()
	if c.IsUnconscious() && physical(i.Ability) {
		return effects.NewBuilder("%s is unconscious and automatically fails the %s check!", c.Name, abbr).
			Add(effects.CheckFailed{CheckType: abbr + " check", DC: i.DC}).
			Build()
	}

	roll := e.rollD20(c.Modifier(i.Ability), i.Advantage)
	success := roll.Total >= i.DC

	return effects.NewBuilder("%s %s (%s check: %d vs DC %d)", c.Name, verb(success), abbr, roll.Total, i.DC).
		Add(
			effects.DiceRolled{Roll: roll, Purpose: purpose(abbr+" check", i.Description)},
			checkOutcome(abbr, roll, i.DC),
		).
		Build()
}

func (e *engine) resolveSavingThrow(w *world.GameWorld, i intents.SavingThrow) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if !i.Ability.Valid() {
		return effects.Reject("Invalid ability: '%s'.", i.Ability)
	}

	abbr := i.Ability.Abbreviation()
	checkType := abbr + " save"
	if c.IsUnconscious() && physical(i.Ability) {
		return effects.NewBuilder("%s is unconscious and automatically fails the %s saving throw!", c.Name, abbr).
			Add(effects.CheckFailed{CheckType: checkType, DC: i.DC}).
			Build()
	}

	roll := e.rollD20(c.SavingThrowModifier(i.Ability), i.Advantage)
	success := roll.Total >= i.DC

	return effects.NewBuilder("%s %s on %s saving throw (%d vs DC %d)", c.Name, verb(success), abbr, roll.Total, i.DC).
		Add(
			effects.DiceRolled{Roll: roll, Purpose: fmt.Sprintf("%s save vs %s", abbr, i.Source)},
			checkOutcome(checkType, roll, i.DC),
		).
		Build()
}

func (e *engine) resolveRollDice(i intents.RollDice) effects.Resolution {
	roll, err := dice.Roll(e.roller, i.Notation)
	if err != nil {
		return effects.Reject("Failed to roll %s: %v", i.Notation, err)
	}
	return effects.NewBuilder("Rolling %s for %s: %s", i.Notation, i.Purpose, roll.String()).
		Add(effects.DiceRolled{Roll: roll, Purpose: i.Purpose}).
		Build()
}

// resolveMove handles travel on foot. Known destinations move the party.
func (e *engine) resolveMove(w *world.GameWorld, i intents.Move) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.IsUnconscious() {
		return effects.Reject("%s is unconscious and cannot move!", c.Name)
	}
	if blocker, blocked := c.MovementBlocker(); blocked {
		return effects.Reject("%s cannot move while %s (speed 0).", c.Name, blocker.Name())
	}
	if i.DistanceFeet > 0 && c.Speed > 0 && i.DistanceFeet > c.Speed*2 {
		return effects.Reject("%s can move at most %d feet in a turn (%d with a dash), not %d.", c.Name, c.Speed, c.Speed*2, i.DistanceFeet)
	}

	dest, known := w.Locations.Find(i.Destination)
	if !known {
		b := effects.NewBuilder("%s moves toward %s", c.Name, i.Destination)
		if i.DistanceFeet > 0 {
			b.Append(" (%d feet)", i.DistanceFeet)
		}
		return b.Append(".").Build()
	}

	b := effects.NewBuilder("%s travels from %s to %s.", c.Name, w.CurrentLocation, dest.Name).
		Add(effects.LocationChanged{PreviousLocation: w.CurrentLocation, NewLocation: dest.Name})
	if from, found := w.Locations.Find(w.CurrentLocation); found {
		if route, linked := from.ConnectionTo(dest.Name); linked && route.TravelTimeMinutes > 0 {
			b.Line("The journey takes %d minute%s.", route.TravelTimeMinutes, plural(route.TravelTimeMinutes))
			b.Add(effects.TimeAdvanced{Minutes: route.TravelTimeMinutes})
		}
	}
	return b.Build()
}
