package rules

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/chronicler/internal/catalog"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/combat"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
)

// Apply writes effs to w in order
func (e *engine) Apply(w *world.GameWorld, effs []effects.Effect) {
	for _, eff := range effs {
		e.ApplyEffect(w, eff)
	}
}

// ApplyEffect never fails. Effects that point at something w no longer has
// are dropped.
func (e *engine) ApplyEffect(w *world.GameWorld, eff effects.Effect) {
	if w == nil || eff == nil {
		return
	}

	switch x := eff.(type) {
	// character
	case effects.HPChanged:
		e.applyHPChanged(w, x)
	case effects.ConditionApplied:
		if c := player(w, x.TargetID); c != nil {
			c.Conditions = c.Conditions.Add(x.Condition, x.Level, x.Source, x.DurationRounds)
		}
	case effects.ConditionRemoved:
		if c := player(w, x.TargetID); c != nil {
			c.Conditions = c.Conditions.Remove(x.Condition)
		}
	case effects.DeathSaveFailure:
		if c := player(w, x.TargetID); c != nil {
			c.DeathSaves.AddFailures(x.Failures)
		}
	case effects.DeathSaveSuccess:
		if c := player(w, x.TargetID); c != nil {
			c.DeathSaves.SetSuccesses(x.TotalSuccesses)
		}
	case effects.DeathSavesReset:
		if c := player(w, x.TargetID); c != nil {
			c.DeathSaves.Reset()
		}
	case effects.Stabilized:
		if c := player(w, x.TargetID); c != nil {
			c.DeathSaves.Reset()
		}
	case effects.CharacterDied:
		if c := player(w, x.TargetID); c != nil {
			c.HitPoints.Current = 0
			c.HitPoints.Temporary = 0
			c.DeathSaves.Failures = character.MaxDeathSaves
			c.Conditions = c.Conditions.Add(conditions.Unconscious, 0, x.Cause, nil)
			syncRoster(w, c)
		}
	case effects.ConcentrationBroken, effects.ConcentrationMaintained:
	case effects.ExperienceGained:
		if c := player(w, ""); c != nil {
			c.Experience += x.Amount
		}
	case effects.LevelUp:
		if c := player(w, ""); c != nil && x.NewLevel > c.Level {
			c.LevelUp(x.NewLevel)
		}
	case effects.FeatureUsed:
		if c := player(w, ""); c != nil {
			if f := c.Features.Find(x.FeatureName); f != nil && f.Uses != nil {
				f.Uses.Current = min(max(x.UsesRemaining, 0), f.Uses.Maximum)
			}
		}
	case effects.SpellSlotUsed:
		if c := player(w, ""); c != nil && c.Spellcasting != nil {
			c.Spellcasting.Slots.Use(x.Level)
		}
	case effects.SpellSlotRestored:
		if c := player(w, ""); c != nil && c.Spellcasting != nil {
			c.Spellcasting.Slots.Restore(x.Level)
		}
	case effects.AbilityScoreModified:
		if c := player(w, ""); c != nil && x.Ability.Valid() {
			c.AbilityScores.Set(x.Ability, c.AbilityScores.Get(x.Ability)+x.Modifier)
		}
	case effects.RestCompleted:
		switch x.RestType {
		case effects.RestShort:
			w.ShortRest()
		case effects.RestLong:
			w.LongRest()
		}

	// combat
	case effects.DiceRolled:
	case effects.SneakAttackUsed:
		if w.Combat != nil {
			w.Combat.MarkSneakAttack(x.CharacterID)
		}
	case effects.CombatStarted:
		w.StartCombat()
	case effects.CombatEnded:
		w.EndCombat()
	case effects.TurnAdvanced:
		e.applyTurnAdvanced(w)
	case effects.InitiativeRolled:
	case effects.CombatantAdded:
		if w.Combat != nil {
			w.Combat.AddCombatant(combat.Combatant{
				ID:         x.ID,
				Name:       x.Name,
				IsPlayer:   w.Player != nil && x.ID == w.Player.ID,
				IsAlly:     x.IsAlly,
				CurrentHP:  x.CurrentHP,
				MaxHP:      x.MaxHP,
				ArmorClass: x.ArmorClass,
				Initiative: x.Initiative,
			})
		}
	case effects.CheckSucceeded, effects.CheckFailed:
	case effects.AttackHit, effects.AttackMissed:

	// inventory
	case effects.ItemAdded:
		e.applyItemAdded(w, x)
	case effects.ItemRemoved:
		if c := player(w, ""); c != nil {
			e.applyItemRemoved(c, x)
		}
	case effects.ItemEquipped:
		if c := player(w, ""); c != nil {
			slot, ok := character.ParseSlot(x.Slot)
			if !ok {
				log.Printf("Rules: dropping ItemEquipped with unknown slot %q", x.Slot)
				return
			}
			item := c.Inventory.Find(x.ItemName)
			if item == nil {
				synthesized, _ := catalog.ItemFor(e.catalog, x.ItemName, 1)
				item = &synthesized
			}
			e.equip(&c.Equipment, *item, slot)
		}
	case effects.ItemUnequipped:
		if c := player(w, ""); c != nil {
			if slot, ok := character.ParseSlot(x.Slot); ok {
				c.Equipment.Clear(slot)
			}
		}
	case effects.ItemUsed:
	case effects.GoldChanged:
		if c := player(w, ""); c != nil {
			c.Inventory.Gold = max(c.Inventory.Gold+x.Amount, 0)
		}
	case effects.SilverChanged:
		if c := player(w, ""); c != nil {
			c.Inventory.Silver = max(c.Inventory.Silver+x.Amount, 0)
		}
	case effects.ACChanged:

	// class resources
	case effects.ClassResourceUsed:
	case effects.RageStarted:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.StartRage(x.DamageBonus)
		}
	case effects.RageEnded:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.EndRage()
		}
	case effects.KiSpent:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.KiPoints = max(c.Resources.KiPoints-x.Points, 0)
		}
	case effects.LayOnHandsSpent:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.LayOnHandsPool = max(c.Resources.LayOnHandsPool-x.Amount, 0)
		}
	case effects.SorceryPointsChanged:
		if c := player(w, x.CharacterID); c != nil {
			r := &c.Resources
			r.SorceryPoints = min(max(r.SorceryPoints+x.Amount, 0), r.MaxSorceryPoints)
		}
	case effects.WildShapeStarted:
		if c := player(w, x.CharacterID); c != nil {
			hp := x.BeastHP
			c.Resources.WildShapeForm = x.BeastForm
			c.Resources.WildShapeHP = &hp
			c.Resources.WildShapeUses = max(c.Resources.WildShapeUses-1, 0)
		}
	case effects.WildShapeEnded:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.WildShapeForm = ""
			c.Resources.WildShapeHP = nil
		}
	case effects.ActionSurgeUsed:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.ActionSurgeUsed = true
		}
	case effects.SecondWindUsed:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.SecondWindUsed = true
		}
	case effects.ChannelDivinityUsed:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.ChannelDivinityUsed = true
		}
	case effects.BardicInspirationUsed:
		if c := player(w, x.CharacterID); c != nil {
			c.Resources.BardicInspiration = max(c.Resources.BardicInspiration-1, 0)
		}

	// time and memory
	case effects.TimeAdvanced:
		w.Time.Advance(x.Minutes)
	case effects.LocationChanged:
		w.CurrentLocation = x.NewLocation
	case effects.FactRemembered:
	case effects.ConsequenceRegistered, effects.ConsequenceTriggered:

	// world building
	case effects.NPCCreated:
		applyNPCCreated(w, x)
	case effects.NPCUpdated:
	case effects.NPCMoved:
		if npc, ok := w.NPCs.Find(x.NPCName); ok {
			npc.LocationID = ""
			if loc, known := w.Locations.Find(x.ToLocation); known {
				npc.LocationID = loc.ID
			}
		}
	case effects.NPCRemoved:
		if npc, ok := w.NPCs.Find(x.NPCName); ok {
			w.NPCs.Delete(npc.ID)
		}
	case effects.LocationCreated:
		applyLocationCreated(w, x)
	case effects.LocationsConnected:
		from, ok := w.Locations.Find(x.From)
		to, found := w.Locations.Find(x.To)
		if ok && found {
			from.Connect(world.Connection{
				DestinationID:     to.ID,
				DestinationName:   to.Name,
				Direction:         x.Direction,
				TravelTimeMinutes: x.TravelTimeMinutes,
			})
		}
	case effects.LocationUpdated:
	case effects.StateAsserted:
		applyStateAsserted(w, x)
	case effects.KnowledgeShared:
		if npc, ok := w.NPCs.Find(x.KnowingEntity); ok {
			npc.Learn(x.Content)
		}
	case effects.EventScheduled, effects.EventCancelled, effects.EventTriggered:

	// quests
	case effects.QuestCreated:
		applyQuestCreated(w, x)
	case effects.QuestObjectiveAdded:
		if q, ok := w.Quests.Find(x.QuestName); ok {
			q.Objectives = append(q.Objectives, world.Objective{Description: x.Objective, Optional: x.Optional})
		}
	case effects.QuestObjectiveCompleted:
		if q, ok := w.Quests.Find(x.QuestName); ok {
			if o := q.FindObjective(x.ObjectiveDescription); o != nil {
				o.Completed = true
			}
		}
	case effects.QuestCompleted:
		if q, ok := w.Quests.Find(x.QuestName); ok {
			q.Complete()
		}
	case effects.QuestFailed:
		if q, ok := w.Quests.Find(x.QuestName); ok {
			q.Status = world.QuestFailed
		}
	case effects.QuestUpdated:
		if q, ok := w.Quests.Find(x.QuestName); ok {
			if x.NewDescription != "" {
				q.Description = x.NewDescription
			}
			q.Rewards = append(q.Rewards, x.AddRewards...)
		}

	default:
		log.Printf("Rules: unhandled effect %T", eff)
	}
}

// player returns the player when id names them, nil otherwise
func player(w *world.GameWorld, id string) *character.Character {
	if isPlayer(w, id) {
		return w.Player
	}
	return nil
}

// syncRoster mirrors the player's HP onto their combat entry
func syncRoster(w *world.GameWorld, c *character.Character) {
	if w.Combat != nil {
		w.Combat.UpdateCombatantHP(c.ID, c.HitPoints.Current)
	}
}

func (e *engine) applyHPChanged(w *world.GameWorld, x effects.HPChanged) {
	c := player(w, x.TargetID)
	if c == nil {
		if t := combatant(w, x.TargetID); t != nil {
			t.CurrentHP = min(max(t.CurrentHP+x.Amount, 0), max(t.MaxHP, t.CurrentHP))
		}
		return
	}

	hp := &c.HitPoints
	wasDown := hp.Current <= 0
	if x.Amount < 0 {
		hp.TakeDamage(-x.Amount)
	} else {
		hp.Heal(x.Amount)
	}

	if wasDown && hp.Current > 0 {
		c.Conditions = c.Conditions.Remove(conditions.Unconscious)
		c.DeathSaves.Reset()
	}
	if x.DroppedToZero || (!wasDown && hp.Current == 0) {
		c.Conditions = c.Conditions.Add(conditions.Unconscious, 0, "Dropped to 0 HP", nil)
	}
	syncRoster(w, c)
}

func (e *engine) applyTurnAdvanced(w *world.GameWorld) {
	if w.Combat == nil {
		return
	}
	w.Combat.NextTurn()
	if w.Player != nil {
		w.Player.Conditions = w.Player.Conditions.Tick()
		w.Player.Resources.TickRage()
	}
}

func (e *engine) applyItemAdded(w *world.GameWorld, x effects.ItemAdded) {
	c := player(w, "")
	if c == nil || x.ItemName == "" {
		return
	}
	item, known := catalog.ItemFor(e.catalog, x.ItemName, max(x.Quantity, 1))
	if !known {
		item.Type = rulebook.ParseItemType(x.ItemType)
		item.Magical = x.Magical
		if x.Weight != nil {
			item.Weight = *x.Weight
		}
		if x.ValueGP != nil {
			item.ValueGP = *x.ValueGP
		}
	}
	if item.Description == "" {
		item.Description = x.Description
	}
	c.Inventory.Add(item)
}

// applyItemRemoved also empties any slot holding the last of the stack
func (e *engine) applyItemRemoved(c *character.Character, x effects.ItemRemoved) {
	if !c.Inventory.Remove(x.ItemName, x.Quantity) {
		return
	}
	if c.Inventory.Find(x.ItemName) != nil {
		return
	}
	for _, slot := range []character.EquipmentSlot{
		character.SlotArmor, character.SlotShield, character.SlotMainHand, character.SlotOffHand,
	} {
		if world.SameName(c.Equipment.ItemName(slot), x.ItemName) {
			c.Equipment.Clear(slot)
		}
	}
}

func applyNPCCreated(w *world.GameWorld, x effects.NPCCreated) {
	if x.Name == "" || w.NPCs.Has(x.Name) {
		return
	}
	npc := &world.NPC{
		ID:               x.ID,
		Name:             x.Name,
		Description:      x.Description,
		Personality:      x.Personality,
		Occupation:       x.Occupation,
		Disposition:      x.Disposition,
		KnownInformation: append([]string(nil), x.KnownInformation...),
	}
	if npc.Disposition == "" {
		npc.Disposition = world.Neutral
	}
	if loc, ok := w.Locations.Find(x.Location); ok {
		npc.LocationID = loc.ID
	}
	w.NPCs.Put(npc)
}

func applyLocationCreated(w *world.GameWorld, x effects.LocationCreated) {
	if x.Name == "" || w.Locations.Has(x.Name) {
		return
	}
	loc := &world.Location{
		ID:          x.ID,
		Name:        x.Name,
		Type:        x.LocationType,
		Description: x.Description,
		Items:       append([]string(nil), x.Items...),
		NPCsPresent: append([]string(nil), x.NPCsPresent...),
	}
	if loc.Type == "" {
		loc.Type = world.LocationOther
	}
	if parent, ok := w.Locations.Find(x.ParentLocation); ok {
		loc.ParentID = parent.ID
	}
	w.Locations.Put(loc)
}

func applyStateAsserted(w *world.GameWorld, x effects.StateAsserted) {
	npc, ok := w.NPCs.Find(x.EntityName)
	if !ok {
		return
	}
	switch x.StateType {
	case world.StateDisposition:
		if d, valid := world.ParseDisposition(x.NewValue); valid {
			npc.Disposition = d
		}
	case world.StateLocation:
		if loc, known := w.Locations.Find(x.NewValue); known {
			npc.LocationID = loc.ID
		} else {
			npc.Learn("Currently at " + x.NewValue)
		}
	case world.StateStatus:
		npc.Status = x.NewValue
	case world.StateKnowledge:
		npc.Learn(x.NewValue)
	case world.StateRelationship:
		if x.TargetEntity != "" {
			npc.Learn(fmt.Sprintf("Relationship with %s: %s", x.TargetEntity, x.NewValue))
		} else {
			npc.Learn("Relationship: " + x.NewValue)
		}
	}
}

func applyQuestCreated(w *world.GameWorld, x effects.QuestCreated) {
	if x.Name == "" || w.Quests.Has(x.Name) {
		return
	}
	q := &world.Quest{
		ID:          x.ID,
		Name:        x.Name,
		Description: x.Description,
		Status:      world.QuestActive,
		Rewards:     append([]string(nil), x.Rewards...),
		Giver:       x.Giver,
	}
	for _, o := range x.Objectives {
		q.Objectives = append(q.Objectives, world.Objective{Description: o.Description, Optional: o.Optional})
	}
	w.Quests.Put(q)
}
