package rules

import (
	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func firstTarget(i intents.CastSpell) string {
	if len(i.TargetNames) > 0 {
		return i.TargetNames[0]
	}
	if len(i.Targets) > 0 {
		return i.Targets[0]
	}
	return "target"
}

func damageTypeName(s *rulebook.Spell) string {
	if s.DamageType == "" {
		return "magical"
	}
	return s.DamageType.Name()
}

func (e *engine) resolveCastSpell(w *world.GameWorld, i intents.CastSpell) effects.Resolution {
	caster, rejected, ok := e.actor(w, i.CasterID)
	if !ok {
		return rejected
	}
	spell, known := e.catalog.Spell(i.SpellName)
	if !known {
		return effects.Reject("Unknown spell: '%s'. The spell is not in the database.", i.SpellName)
	}
	if caster.IsIncapacitated() {
		return effects.Reject("%s is incapacitated and cannot cast %s!", caster.Name, spell.Name)
	}
	if caster.Resources.RageActive {
		return effects.Reject("%s cannot cast spells while raging!", caster.Name)
	}
	if caster.Resources.WildShapeForm != "" {
		return effects.Reject("%s cannot cast spells while in Wild Shape form!", caster.Name)
	}

	slot := 0
	if !spell.IsCantrip() {
		switch {
		case i.SpellLevel == 0:
			slot = spell.Level
		case i.SpellLevel < spell.Level:
			return effects.Reject("Cannot cast %s using a level %d slot - requires at least level %d.", spell.Name, i.SpellLevel, spell.Level)
		default:
			slot = i.SpellLevel
		}
	}

	remaining := 0
	if slot > 0 {
		if caster.Spellcasting == nil {
			return effects.Reject("%s doesn't have spellcasting ability!", caster.Name)
		}
		if slot > character.MaxSpellLevel {
			return effects.Reject("Invalid spell slot level: %d. Must be between 1 and 9.", slot)
		}
		available := caster.Spellcasting.Slots.Available(slot)
		if available == 0 {
			return effects.Reject("%s has no level %d spell slots remaining!", caster.Name, slot)
		}
		remaining = available - 1
	}

	b := effects.NewBuilder("%s casts %s", caster.Name, spell.Name)
	switch {
	case slot == 0:
	case slot > spell.Level:
		b.Append(" (upcast at level %d)", slot)
	default:
		b.Append(" (level %d slot)", slot)
	}
	b.Append("!")
	if spell.Concentration {
		b.Line("(Concentration)")
	}

	spellMod := caster.SpellcastingModifier()
	damage, hasDamage := spell.EffectiveDamage(caster.Level, slot)

	switch {
	case spell.AttackType != rulebook.SpellAttackNone:
		e.spellAttack(w, b, caster, spell, firstTarget(i), damage, hasDamage)

	case spell.SaveType != "":
		effect := spell.SaveEffect
		if effect == "" {
			effect = "negates effect"
		}
		b.Line("Targets must make a DC %d %s saving throw (%s on success).", caster.SpellSaveDC(), spell.SaveType.Name(), effect)
		if hasDamage {
			roll := e.rollExpr(damage, "1d4")
			b.Line("On a failed save: %d %s damage.", roll.Total, damageTypeName(spell))
			b.Add(effects.DiceRolled{Roll: roll, Purpose: spell.Name + " damage"})
		}

	case spell.HealingDice != "":
		healing, parsed := spell.EffectiveHealing(slot)
		if parsed {
			roll := e.rollExpr(healing.AddModifier(spellMod), "1d4")
			b.Line("%s heals %s for %d HP.", caster.Name, firstTarget(i), roll.Total)
			b.Add(effects.DiceRolled{Roll: roll, Purpose: spell.Name + " healing"})
		}

	case hasDamage:
		roll := e.rollExpr(damage, "1d4")
		b.Line("%s takes %d %s damage.", firstTarget(i), roll.Total, damageTypeName(spell))
		b.Add(effects.DiceRolled{Roll: roll, Purpose: spell.Name + " damage"})

	default:
		b.Line("%s", spell.Description)
	}

	if slot > 0 {
		b.Add(effects.SpellSlotUsed{Level: slot, Remaining: remaining})
	}
	return b.Build()
}

func (e *engine) spellAttack(w *world.GameWorld, b *effects.Builder, caster *character.Character, spell *rulebook.Spell, target string, damage dice.Expression, hasDamage bool) {
	kind := string(spell.AttackType)
	roll := e.rollD20(caster.SpellAttackBonus(), dice.Normal)
	b.Add(effects.DiceRolled{Roll: roll, Purpose: kind + " spell attack"})

	targetAC := 10
	if t := combatant(w, target); t != nil {
		targetAC = t.ArmorClass
		target = t.Name
	}
	b.Line("Makes a %s spell attack against %s: %d vs AC %d.", kind, target, roll.Total, targetAC)

	crit := roll.IsCritical()
	if roll.IsFumble() || (roll.Total < targetAC && !crit) {
		b.Line("Miss!")
		b.Add(effects.AttackMissed{AttackerName: caster.Name, TargetName: target, AttackRoll: roll.Total, TargetAC: targetAC})
		return
	}

	b.Line("Hit!")
	b.Add(effects.AttackHit{AttackerName: caster.Name, TargetName: target, AttackRoll: roll.Total, TargetAC: targetAC, IsCritical: crit})
	if !hasDamage {
		return
	}
	if crit {
		damage = damage.DoubleDice()
	}
	dmg := e.rollExpr(damage, "1d4")
	b.Line("Deals %d %s damage.", dmg.Total, damageTypeName(spell))
	b.Add(effects.DiceRolled{Roll: dmg, Purpose: spell.Name + " damage"})
}

func (e *engine) resolveRestoreSpellSlot(w *world.GameWorld, i intents.RestoreSpellSlot) effects.Resolution {
	if i.SlotLevel < 1 || i.SlotLevel > character.MaxSpellLevel {
		return effects.Reject("Invalid spell slot level: %d. Must be between 1 and 9.", i.SlotLevel)
	}
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	if c.Spellcasting == nil {
		return effects.Reject("%s doesn't have spellcasting ability!", c.Name)
	}
	slot := c.Spellcasting.Slots[i.SlotLevel-1]
	if slot.Used == 0 {
		return effects.Reject("%s has no expended level %d spell slots to restore.", c.Name, i.SlotLevel)
	}
	return effects.NewBuilder("Level %d spell slot restored by %s", i.SlotLevel, i.Source).
		Add(effects.SpellSlotRestored{Level: i.SlotLevel, NewRemaining: slot.Available() + 1}).
		Build()
}
