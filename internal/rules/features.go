package rules

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

// outOfUses reports whether a tracked feature has nothing left. Untracked
// features never run out here; their pools are checked separately.
func outOfUses(c *character.Character, name string) bool {
	f := c.Features.Find(name)
	return f != nil && f.Uses != nil && f.Uses.Current <= 0
}

// spendFeature returns the FeatureUsed effect for a tracked feature, nil otherwise
func spendFeature(c *character.Character, name string) []effects.Effect {
	f := c.Features.Find(name)
	if f == nil || f.Uses == nil {
		return nil
	}
	return []effects.Effect{effects.FeatureUsed{FeatureName: f.Name, UsesRemaining: max(f.Uses.Current-1, 0)}}
}

func audit(c *character.Character, resource, format string, args ...any) effects.ClassResourceUsed {
	return effects.ClassResourceUsed{
		CharacterName: c.Name,
		ResourceName:  resource,
		Description:   fmt.Sprintf(format, args...),
	}
}

func (e *engine) resolveUseRage(w *world.GameWorld, i intents.UseRage) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	level := c.ClassLevel(rulebook.Barbarian)
	if level == 0 {
		return effects.Reject("%s is not a barbarian and cannot rage.", c.Name)
	}
	if c.Resources.RageActive {
		return effects.Reject("%s is already raging!", c.Name)
	}
	if outOfUses(c, character.RageFeature) {
		return effects.Reject("%s has no rage uses remaining! (Recovers on long rest)", c.Name)
	}

	bonus := rulebook.RageDamageBonus(level)
	return effects.NewBuilder("%s enters a RAGE! Gains: advantage on STR checks/saves, +%d rage damage to melee attacks, resistance to bludgeoning/piercing/slashing damage. Cannot cast spells or concentrate while raging.", c.Name, bonus).
		Add(
			effects.RageStarted{CharacterID: c.ID, DamageBonus: bonus},
			audit(c, "Rage", "Entered rage (1 minute, +%d damage)", bonus),
		).
		Add(spendFeature(c, character.RageFeature)...).
		Build()
}

var rageEndReasons = map[string]string{
	"duration_expired": "Rage ended (1 minute duration expired).",
	"unconscious":      "Rage ended (knocked unconscious).",
	"no_combat_action": "Rage ended (turn ended without attacking or taking damage).",
	"voluntary":        "Rage ended voluntarily.",
}

func (e *engine) resolveEndRage(w *world.GameWorld, i intents.EndRage) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if !c.Resources.RageActive {
		return effects.Reject("%s is not currently raging.", c.Name)
	}

	reason, known := rageEndReasons[i.Reason]
	if !known {
		reason = "Rage ended."
	}
	return effects.NewBuilder("%s's rage ends. %s", c.Name, reason).
		Add(
			effects.RageEnded{CharacterID: c.ID, Reason: reason},
			audit(c, "Rage", "%s", reason),
		).
		Build()
}

var kiAbilities = map[string]string{
	"flurry_of_blows":  "Flurry of Blows: Make two unarmed strikes as a bonus action.",
	"patient_defense":  "Patient Defense: Take the Dodge action as a bonus action.",
	"step_of_the_wind": "Step of the Wind: Disengage or Dash as a bonus action, jump distance doubled.",
	"stunning_strike":  "Stunning Strike: Target must make a CON save or be Stunned until the end of your next turn.",
}

func (e *engine) resolveUseKi(w *world.GameWorld, i intents.UseKi) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if i.Points <= 0 {
		return effects.Reject("Invalid ki cost: %d. Spend at least 1 ki point.", i.Points)
	}
	res := c.Resources
	if res.KiPoints < i.Points {
		return effects.Reject("%s doesn't have enough ki points! Has %d but needs %d.", c.Name, res.KiPoints, i.Points)
	}

	description, known := kiAbilities[i.Ability]
	if !known {
		description = i.Ability
	}
	remaining := res.KiPoints - i.Points
	return effects.NewBuilder("%s spends %d ki point%s. %s", c.Name, i.Points, plural(i.Points), description).
		Add(
			audit(c, "Ki Points", "Spent %d ki for %s", i.Points, i.Ability),
			effects.KiSpent{CharacterID: c.ID, Points: i.Points, Remaining: remaining},
		).
		Build()
}

func (e *engine) resolveUseLayOnHands(w *world.GameWorld, i intents.UseLayOnHands) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if i.HPAmount < 0 {
		return effects.Reject("Invalid Lay on Hands amount: %d.", i.HPAmount)
	}

	cost := i.HPAmount
	if i.CureDisease {
		cost += 5
	}
	if i.NeutralizePoison {
		cost += 5
	}
	if cost == 0 {
		return effects.Reject("Invalid Lay on Hands use: restore some HP or cure a disease or poison.")
	}
	pool := c.Resources.LayOnHandsPool
	if pool < cost {
		return effects.Reject("%s doesn't have enough in their Lay on Hands pool! Has %d HP but needs %d.", c.Name, pool, cost)
	}

	target := i.TargetName
	if target == "" {
		target = c.Name
	}
	var healed effects.Resolution
	if i.HPAmount > 0 {
		healed = e.resolveHeal(w, intents.Heal{TargetID: target, Amount: i.HPAmount, Source: "Lay on Hands"})
		if healed.Rejected() {
			return healed
		}
	}

	var parts []string
	if i.HPAmount > 0 {
		parts = append(parts, fmt.Sprintf("restores %d HP", i.HPAmount))
	}
	if i.CureDisease {
		parts = append(parts, "cures one disease")
	}
	if i.NeutralizePoison {
		parts = append(parts, "neutralizes one poison")
	}

	b := effects.NewBuilder("%s uses Lay on Hands on %s: %s. (%d HP remaining in pool)", c.Name, target, strings.Join(parts, ", "), pool-cost).
		Add(
			audit(c, "Lay on Hands", "Used %d points on %s", cost, target),
			effects.LayOnHandsSpent{CharacterID: c.ID, Amount: cost, Remaining: pool - cost},
		)
	return b.Add(healed.Effects...).Build()
}

func (e *engine) resolveUseDivineSmite(w *world.GameWorld, i intents.UseDivineSmite) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if i.SpellSlotLevel < 1 || i.SpellSlotLevel > character.MaxSpellLevel {
		return effects.Reject("Invalid spell slot level: %d.", i.SpellSlotLevel)
	}
	if c.Spellcasting == nil {
		return effects.Reject("%s has no spell slots to fuel a Divine Smite.", c.Name)
	}
	available := c.Spellcasting.Slots.Available(i.SpellSlotLevel)
	if available == 0 {
		return effects.Reject("%s has no level %d spell slots remaining!", c.Name, i.SpellSlotLevel)
	}

	// 2d8 plus 1d8 per slot above 1st, capped at 5d8; one more against undead or fiends
	count := min(2+(i.SpellSlotLevel-1), 5)
	extra := ""
	if i.TargetIsUndeadOrFiend {
		count = min(count+1, 6)
		extra = " (extra damage vs undead/fiend)"
	}
	notation := fmt.Sprintf("%dd8", count)
	roll := e.rollExpr(dice.Expression{Groups: []dice.Group{{Count: count, Sides: 8}}}, "2d8")

	return effects.NewBuilder("%s channels divine power into their strike! Divine Smite deals %s = %d radiant damage%s. (Level %d slot expended)",
		c.Name, notation, roll.Total, extra, i.SpellSlotLevel).
		Add(
			effects.DiceRolled{Roll: roll, Purpose: "Divine Smite damage"},
			audit(c, "Divine Smite", "Used level %d slot for smite", i.SpellSlotLevel),
			effects.SpellSlotUsed{Level: i.SpellSlotLevel, Remaining: available - 1},
		).
		Build()
}

func (e *engine) resolveUseWildShape(w *world.GameWorld, i intents.UseWildShape) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.Resources.WildShapeForm != "" {
		return effects.Reject("%s is already in Wild Shape form!", c.Name)
	}
	if c.Resources.WildShapeUses <= 0 || outOfUses(c, "Wild Shape") {
		return effects.Reject("%s has no Wild Shape uses remaining! (Recovers on short/long rest)", c.Name)
	}
	if i.BeastForm == "" || i.BeastHP <= 0 {
		return effects.Reject("Invalid beast form: a form name and positive hit points are required.")
	}

	hours := max(c.ClassLevel(rulebook.Druid), 2) / 2
	b := effects.NewBuilder("%s transforms into a %s! Beast form has %d HP", c.Name, i.BeastForm, i.BeastHP)
	if i.BeastAC != nil {
		b.Append(" and AC %d", *i.BeastAC)
	}
	return b.Append(". Duration: %d hour%s. Mental stats, proficiencies, and features retained. Cannot cast spells but can maintain concentration.", hours, plural(hours)).
		Add(
			audit(c, "Wild Shape", "Transformed into %s (%d HP)", i.BeastForm, i.BeastHP),
			effects.WildShapeStarted{
				CharacterID:   c.ID,
				BeastForm:     i.BeastForm,
				BeastHP:       i.BeastHP,
				UsesRemaining: c.Resources.WildShapeUses - 1,
			},
		).
		Add(spendFeature(c, "Wild Shape")...).
		Build()
}

func (e *engine) resolveEndWildShape(w *world.GameWorld, i intents.EndWildShape) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.Resources.WildShapeForm == "" {
		return effects.Reject("%s is not currently in Wild Shape form.", c.Name)
	}

	var reason string
	switch i.Reason {
	case "duration_expired":
		reason = "Wild Shape ended (duration expired)."
	case "hp_zero":
		reason = "Wild Shape ended (beast HP dropped to 0)."
		if i.ExcessDamage > 0 {
			reason = fmt.Sprintf("Wild Shape ended (beast HP dropped to 0). %d excess damage carries over to normal form!", i.ExcessDamage)
		}
	case "voluntary":
		reason = "Wild Shape ended voluntarily as a bonus action."
	case "incapacitated":
		reason = "Wild Shape ended (druid became incapacitated)."
	default:
		reason = "Wild Shape ended."
	}

	b := effects.NewBuilder("%s reverts to their normal form. %s", c.Name, reason).
		Add(
			audit(c, "Wild Shape", "%s", reason),
			effects.WildShapeEnded{CharacterID: c.ID, Reason: reason},
		)
	if i.ExcessDamage > 0 {
		projected := c.HitPoints
		result := projected.TakeDamage(i.ExcessDamage)
		b.Add(effects.HPChanged{
			TargetID:      c.ID,
			Amount:        -i.ExcessDamage,
			NewCurrent:    projected.Current,
			NewMax:        projected.Maximum,
			DroppedToZero: result.DroppedToZero,
		})
	}
	return b.Build()
}

var channelDivinityOptions = map[string]string{
	"turn undead":   "Turn Undead: Each undead within 30 feet must make a WIS save. On failure, they must spend their turns moving away and cannot take reactions for 1 minute.",
	"divine spark":  "Divine Spark: Either deal 1d8 radiant damage to one creature within 30 feet (DEX save for half), or restore 1d8 HP to one creature within 30 feet.",
	"sacred weapon": "Sacred Weapon: Your weapon becomes magical for 1 minute, +CHA to attack rolls, and sheds bright light.",
}

func (e *engine) resolveUseChannelDivinity(w *world.GameWorld, i intents.UseChannelDivinity) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.ClassLevel(rulebook.Cleric) < 2 && c.ClassLevel(rulebook.Paladin) < 3 {
		return effects.Reject("%s does not have Channel Divinity.", c.Name)
	}
	if c.Resources.ChannelDivinityUsed || outOfUses(c, "Channel Divinity") {
		return effects.Reject("%s has no Channel Divinity uses remaining! (Recovers on short/long rest)", c.Name)
	}

	description, known := channelDivinityOptions[strings.ToLower(strings.TrimSpace(i.Option))]
	if !known {
		description = i.Option
	}
	b := effects.NewBuilder("%s uses Channel Divinity: %s.", c.Name, strings.TrimSuffix(description, "."))
	if len(i.Targets) > 0 {
		b.Line("Targets: %s.", strings.Join(i.Targets, ", "))
	}
	return b.Add(
		audit(c, "Channel Divinity", "%s", i.Option),
		effects.ChannelDivinityUsed{CharacterID: c.ID, Option: i.Option},
	).
		Add(spendFeature(c, "Channel Divinity")...).
		Build()
}

// inspirationDie grows with bard level
func inspirationDie(level int) string {
	switch {
	case level >= 15:
		return "d12"
	case level >= 10:
		return "d10"
	case level >= 5:
		return "d8"
	default:
		return "d6"
	}
}

func (e *engine) resolveUseBardicInspiration(w *world.GameWorld, i intents.UseBardicInspiration) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.Resources.BardicInspiration <= 0 {
		return effects.Reject("%s has no Bardic Inspiration uses remaining! (Recovers on long rest, or short rest at level 5+)", c.Name)
	}
	if i.TargetName == "" {
		return effects.Reject("Invalid target: Bardic Inspiration needs someone to inspire.")
	}

	die := i.DieSize
	if die == "" {
		die = inspirationDie(c.ClassLevel(rulebook.Bard))
	}
	remaining := c.Resources.BardicInspiration - 1
	return effects.NewBuilder("%s inspires %s with a rousing performance! %s gains a %s Bardic Inspiration die they can add to one ability check, attack roll, or saving throw within the next 10 minutes.",
		c.Name, i.TargetName, i.TargetName, die).
		Add(
			audit(c, "Bardic Inspiration", "Inspired %s with a %s", i.TargetName, die),
			effects.BardicInspirationUsed{CharacterID: c.ID, TargetName: i.TargetName, Remaining: remaining},
		).
		Build()
}

func (e *engine) resolveUseActionSurge(w *world.GameWorld, i intents.UseActionSurge) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	if c.ClassLevel(rulebook.Fighter) < 2 {
		return effects.Reject("%s does not have Action Surge (fighter level 2).", c.Name)
	}
	if c.Resources.ActionSurgeUsed || outOfUses(c, "Action Surge") {
		return effects.Reject("%s has already used Action Surge! (Recovers on short/long rest)", c.Name)
	}

	return effects.NewBuilder("%s surges with renewed vigor! Takes an additional action this turn: %s", c.Name, i.ActionTaken).
		Add(
			audit(c, "Action Surge", "%s", i.ActionTaken),
			effects.ActionSurgeUsed{CharacterID: c.ID},
		).
		Add(spendFeature(c, "Action Surge")...).
		Build()
}

func (e *engine) resolveUseSecondWind(w *world.GameWorld, i intents.UseSecondWind) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	level := c.ClassLevel(rulebook.Fighter)
	if level == 0 {
		return effects.Reject("%s does not have Second Wind.", c.Name)
	}
	if c.Resources.SecondWindUsed || outOfUses(c, "Second Wind") {
		return effects.Reject("%s has already used Second Wind! (Recovers on short/long rest)", c.Name)
	}

	roll := e.rollExpr(dice.MustParse("1d10").AddModifier(level), "1d10+1")
	projected := c.HitPoints
	healed := projected.Heal(roll.Total)

	return effects.NewBuilder("%s catches their breath with Second Wind! Regains 1d10+%d = %d HP. (Now at %d/%d)",
		c.Name, level, roll.Total, projected.Current, projected.Maximum).
		Add(
			effects.DiceRolled{Roll: roll, Purpose: "Second Wind healing"},
			effects.HPChanged{TargetID: c.ID, Amount: healed, NewCurrent: projected.Current, NewMax: projected.Maximum},
			audit(c, "Second Wind", "Healed %d HP", healed),
			effects.SecondWindUsed{CharacterID: c.ID},
		).
		Add(spendFeature(c, "Second Wind")...).
		Build()
}

var metamagicOptions = map[string]string{
	"careful":    "Careful Spell: Protect allies from your spell's area effect.",
	"distant":    "Distant Spell: Double the spell's range (or 30 ft if touch).",
	"empowered":  "Empowered Spell: Reroll up to CHA mod damage dice.",
	"extended":   "Extended Spell: Double the spell's duration (max 24 hours).",
	"heightened": "Heightened Spell: Target has disadvantage on first save.",
	"quickened":  "Quickened Spell: Cast as a bonus action instead of an action.",
	"subtle":     "Subtle Spell: Cast without verbal or somatic components.",
	"twinned":    "Twinned Spell: Target a second creature with a single-target spell.",
}

func (e *engine) resolveUseSorceryPoints(w *world.GameWorld, i intents.UseSorceryPoints) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	res := c.Resources

	switch i.Metamagic {
	case "convert_to_slot", "convert_from_slot":
		if i.SlotLevel == nil || *i.SlotLevel < 1 || *i.SlotLevel > 5 {
			return effects.Reject("Invalid slot level for conversion: pick a level from 1 to 5.")
		}
		if c.Spellcasting == nil {
			return effects.Reject("%s has no spell slots to convert.", c.Name)
		}
	}

	switch i.Metamagic {
	case "convert_to_slot":
		level := *i.SlotLevel
		cost := level
		if res.SorceryPoints < cost {
			return effects.Reject("%s doesn't have enough sorcery points! Has %d but needs %d to create a level %d slot.",
				c.Name, res.SorceryPoints, cost, level)
		}
		slot := c.Spellcasting.Slots[level-1]
		if slot.Used == 0 {
			return effects.Reject("%s has no expended level %d slot to refill.", c.Name, level)
		}
		return effects.NewBuilder("%s converts %d sorcery points into a level %d spell slot.", c.Name, cost, level).
			Add(
				audit(c, "Sorcery Points", "Created level %d spell slot", level),
				effects.SorceryPointsChanged{CharacterID: c.ID, Amount: -cost, NewTotal: res.SorceryPoints - cost},
				effects.SpellSlotRestored{Level: level, NewRemaining: slot.Available() + 1},
			).
			Build()

	case "convert_from_slot":
		level := *i.SlotLevel
		available := c.Spellcasting.Slots.Available(level)
		if available == 0 {
			return effects.Reject("%s has no level %d spell slots remaining!", c.Name, level)
		}
		total := min(res.SorceryPoints+level, res.MaxSorceryPoints)
		return effects.NewBuilder("%s converts a level %d spell slot into %d sorcery points.", c.Name, level, level).
			Add(
				audit(c, "Sorcery Points", "Gained %d points from slot", level),
				effects.SpellSlotUsed{Level: level, Remaining: available - 1},
				effects.SorceryPointsChanged{CharacterID: c.ID, Amount: total - res.SorceryPoints, NewTotal: total},
			).
			Build()
	}

	if i.Points <= 0 {
		return effects.Reject("Invalid sorcery point cost: %d.", i.Points)
	}
	if res.SorceryPoints < i.Points {
		return effects.Reject("%s doesn't have enough sorcery points! Has %d but needs %d.", c.Name, res.SorceryPoints, i.Points)
	}

	description, known := metamagicOptions[strings.ToLower(i.Metamagic)]
	if !known {
		description = i.Metamagic
	}
	b := effects.NewBuilder("%s uses %s", c.Name, strings.TrimSuffix(description, "."))
	if i.SpellName != "" {
		b.Append(" on %s", i.SpellName)
	}
	return b.Append(" (%d sorcery point%s).", i.Points, plural(i.Points)).
		Add(
			audit(c, "Sorcery Points", "Used %d for %s", i.Points, i.Metamagic),
			effects.SorceryPointsChanged{CharacterID: c.ID, Amount: -i.Points, NewTotal: res.SorceryPoints - i.Points},
		).
		Build()
}
