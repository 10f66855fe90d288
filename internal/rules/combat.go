package rules

import (
	"fmt"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/combat"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

// combatant finds a non-player fighter by id, then by name
func combatant(w *world.GameWorld, ref string) *combat.Combatant {
	if w.Combat == nil || ref == "" {
		return nil
	}
	if c := w.Combat.Find(ref); c != nil {
		return c
	}
	return w.Combat.FindByName(ref)
}

func damageText(amount int, dt shared.DamageType) string {
	if dt == "" {
		return fmt.Sprintf("%d damage", amount)
	}
	return fmt.Sprintf("%d %s damage", amount, dt.Name())
}

// attackWeapon picks the catalog weapon, then the one in hand. Nil means unarmed.
func (e *engine) attackWeapon(c *character.Character, name string) (*rulebook.Weapon, string) {
	if name != "" {
		if w, ok := e.catalog.Weapon(name); ok {
			return w, name
		}
	}
	if c.Equipment.MainHand != nil {
		if name == "" {
			name = c.Equipment.MainHand.Name
		}
		return c.Equipment.MainHand, name
	}
	if name == "" {
		name = "unarmed strike"
	}
	return nil, name
}

func (e *engine) resolveAttack(w *world.GameWorld, i intents.Attack) effects.Resolution {
	attacker, rejected, ok := e.actor(w, i.AttackerID)
	if !ok {
		return rejected
	}
	if attacker.IsUnconscious() {
		return effects.Reject("%s is unconscious and cannot attack!", attacker.Name)
	}

	targetAC := 10
	targetName := i.TargetID
	if i.TargetID != "" && isPlayer(w, i.TargetID) {
		targetAC = attacker.ArmorClass()
		targetName = attacker.Name
	} else if t := combatant(w, i.TargetID); t != nil {
		targetAC = t.ArmorClass
		targetName = t.Name
	}
	if targetName == "" {
		targetName = "target"
	}

	weapon, weaponName := e.attackWeapon(attacker, i.WeaponName)
	finesse, ranged := false, false
	if weapon != nil {
		finesse, ranged = weapon.IsFinesse(), weapon.Ranged
	}

	strMod := attacker.Modifier(shared.Strength)
	dexMod := attacker.Modifier(shared.Dexterity)
	var abilityMod int
	switch {
	case ranged:
		abilityMod = dexMod
	case finesse:
		abilityMod = max(strMod, dexMod)
	default:
		abilityMod = strMod
	}
	strengthMelee := !ranged && (!finesse || strMod >= dexMod)

	attackRoll := e.rollD20(abilityMod+attacker.ProficiencyBonus(), i.Advantage)
	b := effects.NewBuilder("%s attacks with %s (roll: %d vs AC %d)", attacker.Name, weaponName, attackRoll.Total, targetAC).
		Add(effects.DiceRolled{Roll: attackRoll, Purpose: "Attack with " + weaponName})

	crit := attackRoll.IsCritical()
	hit := !attackRoll.IsFumble() && (attackRoll.Total >= targetAC || crit)
	if !hit {
		return b.Line("Miss!").
			Add(effects.AttackMissed{
				AttackerName: attacker.Name,
				TargetName:   targetName,
				AttackRoll:   attackRoll.Total,
				TargetAC:     targetAC,
			}).
			Build()
	}

	b.Add(effects.AttackHit{
		AttackerName: attacker.Name,
		TargetName:   targetName,
		AttackRoll:   attackRoll.Total,
		TargetAC:     targetAC,
		IsCritical:   crit,
	})

	bonus := abilityMod
	if strengthMelee && attacker.Resources.RageActive {
		bonus += attacker.Resources.RageDamageBonus
	}
	damage := e.weaponDamage(weapon, crit, bonus)
	if crit {
		b.Line("CRITICAL HIT!")
	} else {
		b.Line("Hit!")
	}
	damageType := shared.Bludgeoning
	if weapon != nil && weapon.DamageType != "" {
		damageType = weapon.DamageType
	}
	b.Line("Deals %s.", damageText(damage.Total, damageType))
	b.Add(effects.DiceRolled{Roll: damage, Purpose: "Damage"})

	rogue := attacker.ClassLevel(rulebook.Rogue)
	if rogue > 0 && (finesse || ranged) {
		available := w.Combat == nil || !w.Combat.HasUsedSneakAttack(attacker.ID)
		allyEngaged := false
		if w.Combat != nil {
			for _, ally := range w.Combat.LivingAllies() {
				if ally.ID != i.TargetID {
					allyEngaged = true
					break
				}
			}
		}
		if available && (i.Advantage == dice.WithAdvantage || allyEngaged) {
			sneakDice := (rogue + 1) / 2
			rolled := sneakDice
			if crit {
				rolled *= 2
			}
			expr := dice.Expression{Groups: []dice.Group{{Count: rolled, Sides: 6}}}
			sneak := e.rollExpr(expr, "1d6")
			b.Line("Sneak Attack adds %d damage!", sneak.Total)
			b.Add(
				effects.DiceRolled{Roll: sneak, Purpose: "Sneak Attack"},
				effects.SneakAttackUsed{CharacterID: attacker.ID, DamageDice: sneakDice},
			)
		}
	}

	return b.Build()
}

// weaponDamage rolls the weapon's dice, doubled on a crit, plus bonus.
// Unarmed strikes deal a flat 1.
func (e *engine) weaponDamage(weapon *rulebook.Weapon, crit bool, bonus int) *dice.Result {
	notation := "1"
	if weapon != nil && weapon.DamageDice != "" {
		notation = weapon.DamageDice
	}
	expr, err := dice.Parse(notation)
	if err != nil {
		return dice.RollWithFallback(e.roller, notation, "1d4")
	}
	if crit {
		if expr.DiceCount() > 0 {
			expr = expr.DoubleDice()
		} else {
			expr = expr.AddModifier(expr.Modifier)
		}
	}
	return e.rollExpr(expr.AddModifier(bonus), "1d4")
}

func (e *engine) resolveDamage(w *world.GameWorld, i intents.Damage) effects.Resolution {
	if i.Amount <= 0 {
		return effects.Reject("Invalid damage amount: %d. Damage must be positive.", i.Amount)
	}
	if w.Player != nil && isPlayer(w, i.TargetID) {
		return e.damagePlayer(w.Player, i)
	}
	if t := combatant(w, i.TargetID); t != nil {
		return damageCombatant(t, i)
	}
	return effects.Reject("Target '%s' not found.", i.TargetID)
}

func (e *engine) damagePlayer(c *character.Character, i intents.Damage) effects.Resolution {
	hp := c.HitPoints
	taken := damageText(i.Amount, i.DamageType)

	if hp.Current <= 0 {
		if i.Amount >= hp.Maximum {
			return effects.NewBuilder("%s takes %s from %s while unconscious - INSTANT DEATH! (Damage %d >= max HP %d)",
				c.Name, taken, i.Source, i.Amount, hp.Maximum).
				Add(effects.CharacterDied{TargetID: c.ID, Cause: "Massive damage while unconscious from " + i.Source}).
				Build()
		}

		failures := c.DeathSaves.Failures + 1
		failure := effects.DeathSaveFailure{TargetID: c.ID, Failures: 1, TotalFailures: min(failures, character.MaxDeathSaves), Source: i.Source}
		if failures >= character.MaxDeathSaves {
			return effects.NewBuilder("%s takes %s from %s while unconscious - death save failure! Total failures: 3 - %s DIES!",
				c.Name, taken, i.Source, c.Name).
				Add(failure, effects.CharacterDied{TargetID: c.ID, Cause: "Failed 3 death saving throws"}).
				Build()
		}
		return effects.NewBuilder("%s takes %s from %s while unconscious - death save failure! (Failures: %d/3)",
			c.Name, taken, i.Source, failures).
			Add(failure).
			Build()
	}

	projected := hp
	result := projected.TakeDamage(i.Amount)
	overflow := 0
	if result.DroppedToZero {
		overflow = i.Amount - (hp.Current + hp.Temporary)
	}
	instantDeath := result.DroppedToZero && overflow >= hp.Maximum

	var status string
	switch {
	case instantDeath:
		status = fmt.Sprintf(" (INSTANT DEATH! Massive damage (%d overflow) against max HP of %d)", overflow, hp.Maximum)
	case result.DroppedToZero:
		status = fmt.Sprintf(" (HP: 0/%d - UNCONSCIOUS! Character falls and begins making death saving throws)", hp.Maximum)
	case projected.Status() != "":
		status = fmt.Sprintf(" (HP: %d/%d - %s)", projected.Current, projected.Maximum, projected.Status())
	default:
		status = fmt.Sprintf(" (HP: %d/%d)", projected.Current, projected.Maximum)
	}

	b := effects.NewBuilder("%s takes %s from %s%s", c.Name, taken, i.Source, status).
		Add(effects.HPChanged{
			TargetID:      c.ID,
			Amount:        -i.Amount,
			NewCurrent:    projected.Current,
			NewMax:        projected.Maximum,
			DroppedToZero: result.DroppedToZero,
		})
	if instantDeath {
		b.Add(effects.CharacterDied{TargetID: c.ID, Cause: "Massive damage from " + i.Source})
	}
	return b.Build()
}

func damageCombatant(t *combat.Combatant, i intents.Damage) effects.Resolution {
	remaining := max(t.CurrentHP-i.Amount, 0)
	dropped := t.CurrentHP > 0 && remaining == 0

	b := effects.NewBuilder("%s takes %s from %s (HP: %d/%d)", t.Name, damageText(i.Amount, i.DamageType), i.Source, remaining, t.MaxHP)
	if dropped {
		b.Line("%s falls!", t.Name)
	}
	return b.Add(effects.HPChanged{
		TargetID:      t.ID,
		Amount:        -i.Amount,
		NewCurrent:    remaining,
		NewMax:        t.MaxHP,
		DroppedToZero: dropped,
	}).Build()
}

func (e *engine) resolveHeal(w *world.GameWorld, i intents.Heal) effects.Resolution {
	if i.Amount <= 0 {
		return effects.Reject("Invalid healing amount: %d. Healing must be positive.", i.Amount)
	}

	if w.Player != nil && isPlayer(w, i.TargetID) {
		c := w.Player
		projected := c.HitPoints
		wasDown := projected.Current <= 0
		healed := projected.Heal(i.Amount)

		var status string
		switch {
		case wasDown && projected.Current > 0:
			status = fmt.Sprintf(" (HP: %d/%d - regains consciousness!)", projected.Current, projected.Maximum)
		case projected.Current == projected.Maximum:
			status = fmt.Sprintf(" (HP: %d/%d - fully healed)", projected.Current, projected.Maximum)
		default:
			status = fmt.Sprintf(" (HP: %d/%d)", projected.Current, projected.Maximum)
		}
		return effects.NewBuilder("%s heals %d hit points from %s%s", c.Name, healed, i.Source, status).
			Add(effects.HPChanged{TargetID: c.ID, Amount: healed, NewCurrent: projected.Current, NewMax: projected.Maximum}).
			Build()
	}

	if t := combatant(w, i.TargetID); t != nil {
		current := min(max(t.CurrentHP, 0)+i.Amount, t.MaxHP)
		healed := current - max(t.CurrentHP, 0)
		return effects.NewBuilder("%s heals %d hit points from %s (HP: %d/%d)", t.Name, healed, i.Source, current, t.MaxHP).
			Add(effects.HPChanged{TargetID: t.ID, Amount: healed, NewCurrent: current, NewMax: t.MaxHP}).
			Build()
	}
	return effects.Reject("Target '%s' not found.", i.TargetID)
}

func (e *engine) resolveApplyCondition(w *world.GameWorld, i intents.ApplyCondition) effects.Resolution {
	c, rejected, ok := e.actor(w, i.TargetID)
	if !ok {
		return rejected
	}
	if !i.Condition.Valid() {
		return effects.Reject("Invalid condition: '%s'.", i.Condition)
	}
	if i.DurationRounds != nil && *i.DurationRounds <= 0 {
		return effects.Reject("Invalid duration: %d rounds. Leave it empty for a condition that lasts until removed.", *i.DurationRounds)
	}

	level := 0
	if i.Condition == conditions.Exhaustion {
		level = min(max(i.Level, 1), conditions.MaxExhaustionLevel)
	}

	b := effects.NewBuilder("%s is now %s (%s)", c.Name, conditions.Label(i.Condition, level), i.Source)
	if i.DurationRounds != nil {
		b.Append(" for %d rounds", *i.DurationRounds)
	}
	return b.Add(effects.ConditionApplied{
		TargetID:       c.ID,
		Condition:      i.Condition,
		Level:          level,
		Source:         i.Source,
		DurationRounds: copyInt(i.DurationRounds),
	}).Build()
}

func (e *engine) resolveRemoveCondition(w *world.GameWorld, i intents.RemoveCondition) effects.Resolution {
	c, rejected, ok := e.actor(w, i.TargetID)
	if !ok {
		return rejected
	}
	if !c.HasCondition(i.Condition) {
		return effects.Reject("%s is not %s.", c.Name, i.Condition.Name())
	}
	return effects.NewBuilder("%s is no longer %s", c.Name, i.Condition.Name()).
		Add(effects.ConditionRemoved{TargetID: c.ID, Condition: i.Condition}).
		Build()
}

func (e *engine) resolveStartCombat(w *world.GameWorld, i intents.StartCombat) effects.Resolution {
	b := effects.NewBuilder("Combat begins! Roll for initiative.").Add(effects.CombatStarted{})

	for _, init := range i.Combatants {
		mod := init.InitiativeModifier
		id, name := init.ID, init.Name
		currentHP, maxHP, ac := init.CurrentHP, init.MaxHP, init.ArmorClass
		if init.IsPlayer && w.Player != nil {
			p := w.Player
			mod = p.InitiativeModifier()
			if id == "" {
				id = p.ID
			}
			if name == "" {
				name = p.Name
			}
			currentHP, maxHP, ac = p.HitPoints.Current, p.HitPoints.Maximum, p.ArmorClass()
		}

		roll := e.rollD20(0, dice.Normal)
		total := roll.Total + mod
		b.Add(
			effects.InitiativeRolled{CharacterID: id, Name: name, Roll: roll.Total, Total: total},
			effects.CombatantAdded{
				ID:         id,
				Name:       name,
				Initiative: total,
				IsAlly:     init.IsAlly || init.IsPlayer,
				CurrentHP:  currentHP,
				MaxHP:      maxHP,
				ArmorClass: ac,
			},
		)
	}
	return b.Build()
}

func (e *engine) resolveEndCombat(w *world.GameWorld) effects.Resolution {
	if !w.InCombat() {
		return effects.Reject("No combat in progress")
	}
	return effects.NewBuilder("Combat ends.").Add(effects.CombatEnded{}).Build()
}

func (e *engine) resolveNextTurn(w *world.GameWorld) effects.Resolution {
	if !w.InCombat() {
		return effects.Reject("No combat in progress")
	}

	preview := w.Combat.Clone()
	preview.NextTurn()
	current := "Unknown"
	if c := preview.Current(); c != nil {
		current = c.Name
	}
	return effects.NewBuilder("Next turn: %s (Round %d)", current, preview.Round).
		Add(effects.TurnAdvanced{Round: preview.Round, CurrentCombatant: current}).
		Build()
}

func (e *engine) resolveRollInitiative(w *world.GameWorld, i intents.RollInitiative) effects.Resolution {
	id, name, mod := i.CharacterID, i.Name, i.Modifier
	if i.IsPlayer && w.Player != nil {
		mod = w.Player.InitiativeModifier()
		if id == "" {
			id = w.Player.ID
		}
		if name == "" {
			name = w.Player.Name
		}
	}

	roll := e.rollD20(0, dice.Normal)
	total := roll.Total + mod
	return effects.NewBuilder("%s rolls initiative: %d + %d = %d", name, roll.Total, mod, total).
		Add(
			effects.DiceRolled{Roll: roll, Purpose: "Initiative"},
			effects.InitiativeRolled{CharacterID: id, Name: name, Roll: roll.Total, Total: total},
		).
		Build()
}

func (e *engine) resolveDeathSave(w *world.GameWorld, i intents.DeathSave) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.HitPoints.Current > 0 {
		return effects.Reject("%s is not dying and doesn't need to make a death save.", c.Name)
	}

	roll := e.rollD20(0, dice.Normal)
	value := roll.Total

	if roll.IsCritical() {
		return effects.NewBuilder("%s rolls a NATURAL 20 on their death save! They regain 1 HP and become conscious!", c.Name).
			Add(
				effects.DeathSavesReset{TargetID: c.ID},
				effects.HPChanged{TargetID: c.ID, Amount: 1, NewCurrent: 1, NewMax: c.HitPoints.Maximum},
				effects.ConditionRemoved{TargetID: c.ID, Condition: conditions.Unconscious},
			).
			Build()
	}

	if roll.IsFumble() {
		failures := c.DeathSaves.Failures + 2
		failure := effects.DeathSaveFailure{
			TargetID:      c.ID,
			Failures:      2,
			TotalFailures: min(failures, character.MaxDeathSaves),
			Source:        "Natural 1 on death save",
		}
		if failures >= character.MaxDeathSaves {
			return effects.NewBuilder("%s rolls a NATURAL 1 on their death save! Two failures! %s has died!", c.Name, c.Name).
				Add(failure, effects.CharacterDied{TargetID: c.ID, Cause: "Failed death saves"}).
				Build()
		}
		return effects.NewBuilder("%s rolls a NATURAL 1 on their death save! That counts as TWO failures! (%d/3)", c.Name, failures).
			Add(failure).
			Build()
	}

	if value >= 10 {
		successes := c.DeathSaves.Successes + 1
		if successes >= character.MaxDeathSaves {
			return effects.NewBuilder("%s rolls %d on their death save - SUCCESS! With 3 successes, %s is now STABLE!", c.Name, value, c.Name).
				Add(
					effects.DeathSaveSuccess{TargetID: c.ID, Roll: value, TotalSuccesses: character.MaxDeathSaves},
					effects.Stabilized{TargetID: c.ID},
				).
				Build()
		}
		return effects.NewBuilder("%s rolls %d on their death save - SUCCESS! (%d/3 successes)", c.Name, value, successes).
			Add(effects.DeathSaveSuccess{TargetID: c.ID, Roll: value, TotalSuccesses: successes}).
			Build()
	}

	failures := c.DeathSaves.Failures + 1
	if failures >= character.MaxDeathSaves {
		return effects.NewBuilder("%s rolls %d on their death save - FAILURE! With 3 failures, %s has DIED!", c.Name, value, c.Name).
			Add(
				effects.DeathSaveFailure{TargetID: c.ID, Failures: 1, TotalFailures: character.MaxDeathSaves, Source: "Death save"},
				effects.CharacterDied{TargetID: c.ID, Cause: "Failed death saves"},
			).
			Build()
	}
	return effects.NewBuilder("%s rolls %d on their death save - FAILURE! (%d/3 failures)", c.Name, value, failures).
		Add(effects.DeathSaveFailure{TargetID: c.ID, Failures: 1, TotalFailures: failures, Source: "Death save"}).
		Build()
}

func (e *engine) resolveConcentrationCheck(w *world.GameWorld, i intents.ConcentrationCheck) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}

	dc := max(10, i.DamageTaken/2)
	mod := c.Modifier(shared.Constitution)
	if c.HasSavingThrowProficiency(shared.Constitution) {
		mod += c.ProficiencyBonus()
	}
	roll := e.rollD20(mod, dice.Normal)

	b := effects.NewBuilder("%s makes a DC %d Constitution save to maintain concentration on %s. Rolls %d", c.Name, dc, i.SpellName, roll.Total)
	if roll.Total >= dc {
		return b.Append(" - SUCCESS! Concentration maintained.").
			Add(effects.ConcentrationMaintained{CharacterID: c.ID, SpellName: i.SpellName, Roll: roll.Total, DC: dc}).
			Build()
	}
	return b.Append(" - FAILED! Concentration is broken!").
		Add(effects.ConcentrationBroken{CharacterID: c.ID, SpellName: i.SpellName, DamageTaken: i.DamageTaken, Roll: roll.Total, DC: dc}).
		Build()
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
