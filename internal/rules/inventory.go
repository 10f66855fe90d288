package rules

import (
	"fmt"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func quantityPrefix(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d x ", n)
	}
	return ""
}

// slotFor maps an item type to the slot it goes in
func slotFor(t rulebook.ItemType) (character.EquipmentSlot, bool) {
	switch t {
	case rulebook.ItemWeapon:
		return character.SlotMainHand, true
	case rulebook.ItemArmor:
		return character.SlotArmor, true
	case rulebook.ItemShield:
		return character.SlotShield, true
	}
	return "", false
}

// weapon looks the name up in the catalog, falling back to a generic blade
func (e *engine) weapon(name string) *rulebook.Weapon {
	if w, ok := e.catalog.Weapon(name); ok {
		return w
	}
	return rulebook.DefaultWeapon(name)
}

func (e *engine) armor(name string) *rulebook.Armor {
	if a, ok := e.catalog.Armor(name); ok {
		return a
	}
	return rulebook.DefaultArmor(name)
}

// equip puts item into slot. Unknown names get sane defaults.
func (e *engine) equip(eq *character.Equipment, item character.Item, slot character.EquipmentSlot) {
	switch slot {
	case character.SlotMainHand:
		eq.MainHand = e.weapon(item.Name)
	case character.SlotArmor:
		eq.Armor = e.armor(item.Name)
	case character.SlotShield:
		shield := item
		shield.Quantity = 1
		eq.Shield = &shield
	case character.SlotOffHand:
		held := item
		held.Quantity = 1
		eq.OffHand = &held
	}
}

func (e *engine) resolveAddItem(w *world.GameWorld, i intents.AddItem) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	if i.ItemName == "" {
		return effects.Reject("Invalid item: a name is required.")
	}
	if i.Quantity < 0 {
		return effects.Reject("Invalid quantity: %d.", i.Quantity)
	}
	qty := max(i.Quantity, 1)

	existing := 0
	if item := c.Inventory.Find(i.ItemName); item != nil {
		existing = item.Quantity
	}
	total := existing + qty

	return effects.NewBuilder("%s receives %s%s (now has %d total)", c.Name, quantityPrefix(qty), i.ItemName, total).
		Add(effects.ItemAdded{
			ItemName:    i.ItemName,
			Quantity:    qty,
			NewTotal:    total,
			ItemType:    i.ItemType,
			Description: i.Description,
			Magical:     i.Magical,
			Weight:      i.Weight,
			ValueGP:     i.ValueGP,
		}).
		Build()
}

func (e *engine) resolveRemoveItem(w *world.GameWorld, i intents.RemoveItem) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	qty := max(i.Quantity, 1)

	item := c.Inventory.Find(i.ItemName)
	if item == nil {
		return effects.Reject("%s doesn't have any %s", c.Name, i.ItemName)
	}
	if item.Quantity < qty {
		return effects.Reject("%s doesn't have enough %s (has %d, needs %d)", c.Name, i.ItemName, item.Quantity, qty)
	}

	remaining := item.Quantity - qty
	return effects.NewBuilder("%s loses %s%s (%d remaining)", c.Name, quantityPrefix(qty), item.Name, remaining).
		Add(effects.ItemRemoved{ItemName: item.Name, Quantity: qty, Remaining: remaining}).
		Build()
}

func (e *engine) resolveEquipItem(w *world.GameWorld, i intents.EquipItem) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	item := c.Inventory.Find(i.ItemName)
	if item == nil {
		return effects.Reject("%s doesn't have %s in their inventory", c.Name, i.ItemName)
	}
	slot, equippable := slotFor(item.Type)
	if !equippable {
		return effects.Reject("%s cannot be equipped (not a weapon, armor, or shield)", item.Name)
	}

	switch slot {
	case character.SlotShield:
		if held := c.Equipment.MainHand; held != nil && held.IsTwoHanded() {
			return effects.Reject("Cannot equip %s - %s requires two hands", item.Name, held.Name)
		}
	case character.SlotMainHand:
		if e.weapon(item.Name).IsTwoHanded() && c.Equipment.Shield != nil {
			return effects.Reject("Cannot equip %s - it requires two hands but a shield is equipped. Unequip the shield first.", item.Name)
		}
	}

	var b *effects.Builder
	armor, known := e.catalog.Armor(item.Name)
	strength := c.AbilityScores.Get(shared.Strength)
	if slot == character.SlotArmor && known && armor.StrengthRequirement > strength {
		b = effects.NewBuilder("%s equips %s but doesn't meet the Strength %d requirement (has %d). Movement speed reduced by 10 feet.",
			c.Name, item.Name, armor.StrengthRequirement, strength)
	} else {
		b = effects.NewBuilder("%s equips %s in %s slot", c.Name, item.Name, slot)
	}
	b.Add(effects.ItemEquipped{ItemName: item.Name, Slot: string(slot)})

	if slot == character.SlotArmor || slot == character.SlotShield {
		projected := c.Clone()
		e.equip(&projected.Equipment, *item, slot)
		if ac := projected.ArmorClass(); ac != c.ArmorClass() {
			b.Line("AC is now %d.", ac)
			b.Add(effects.ACChanged{NewAC: ac, Source: item.Name})
		}
	}
	return b.Build()
}

func (e *engine) resolveUnequipItem(w *world.GameWorld, i intents.UnequipItem) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	slot, valid := character.ParseSlot(i.Slot)
	if !valid {
		return effects.Reject("Unknown equipment slot: %s. Valid slots: armor, shield, main_hand, off_hand", i.Slot)
	}
	name := c.Equipment.ItemName(slot)
	if name == "" {
		return effects.Reject("Nothing equipped in %s slot", slot)
	}

	b := effects.NewBuilder("%s unequips %s", c.Name, name).
		Add(effects.ItemUnequipped{ItemName: name, Slot: string(slot)})
	if slot == character.SlotArmor || slot == character.SlotShield {
		projected := c.Clone()
		projected.Equipment.Clear(slot)
		if ac := projected.ArmorClass(); ac != c.ArmorClass() {
			b.Line("AC is now %d.", ac)
			b.Add(effects.ACChanged{NewAC: ac, Source: "Removed " + name})
		}
	}
	return b.Build()
}

func (e *engine) resolveUseItem(w *world.GameWorld, i intents.UseItem) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	if c.HasCondition(conditions.Unconscious) {
		return effects.Reject("%s is unconscious and cannot use items!", c.Name)
	}
	item := c.Inventory.Find(i.ItemName)
	if item == nil {
		return effects.Reject("%s doesn't have %s in their inventory", c.Name, i.ItemName)
	}
	consumed := effects.ItemRemoved{ItemName: item.Name, Quantity: 1, Remaining: item.Quantity - 1}

	switch item.Type {
	case rulebook.ItemPotion:
		notation := "2d4+2"
		if p, found := e.catalog.Potion(item.Name); found {
			notation = p.HealingNotation()
		}
		heal := e.rollNotation(notation, "1d4")

		target := i.TargetID
		if target == "" {
			target = c.ID
		}
		healed := e.resolveHeal(w, intents.Heal{TargetID: target, Amount: heal.Total, Source: item.Name})
		if healed.Rejected() {
			return healed
		}

		b := effects.NewBuilder("%s drinks %s and heals for %d HP", c.Name, item.Name, heal.Total)
		if !isPlayer(w, target) {
			b = effects.NewBuilder("%s gives %s to %s, healing %d HP", c.Name, item.Name, target, heal.Total)
		}
		return b.Add(
			effects.DiceRolled{Roll: heal, Purpose: item.Name},
			effects.ItemUsed{ItemName: item.Name, Result: fmt.Sprintf("Healed %d HP", heal.Total)},
		).
			Add(healed.Effects...).
			Add(consumed).
			Build()

	case rulebook.ItemScroll:
		return effects.NewBuilder("%s reads %s and it crumbles to dust", c.Name, item.Name).
			Add(
				effects.ItemUsed{ItemName: item.Name, Result: "Scroll consumed"},
				consumed,
			).
			Build()
	}
	return effects.Reject("%s is not a consumable item", item.Name)
}

func (e *engine) resolveAdjustGold(w *world.GameWorld, i intents.AdjustGold) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	if i.Amount == 0 {
		return effects.Reject("Invalid gold amount: 0.")
	}
	total := c.Inventory.Gold + i.Amount
	if total < 0 {
		return effects.Reject("%s doesn't have enough gold (has %d gp, needs %d gp)", c.Name, c.Inventory.Gold, -i.Amount)
	}
	return effects.NewBuilder("%s %s %d gp %s (now has %d gp)", c.Name, gainsOrSpends(i.Amount), abs(i.Amount), i.Reason, total).
		Add(effects.GoldChanged{Amount: i.Amount, NewTotal: total, Reason: i.Reason}).
		Build()
}

func (e *engine) resolveAdjustSilver(w *world.GameWorld, i intents.AdjustSilver) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	if i.Amount == 0 {
		return effects.Reject("Invalid silver amount: 0.")
	}
	total := c.Inventory.Silver + i.Amount
	if total < 0 {
		return effects.Reject("%s doesn't have enough silver (has %d sp, needs %d sp)", c.Name, c.Inventory.Silver, -i.Amount)
	}
	return effects.NewBuilder("%s %s %d sp %s (now has %d sp)", c.Name, gainsOrSpends(i.Amount), abs(i.Amount), i.Reason, total).
		Add(effects.SilverChanged{Amount: i.Amount, NewTotal: total, Reason: i.Reason}).
		Build()
}

func gainsOrSpends(amount int) string {
	if amount >= 0 {
		return "gains"
	}
	return "spends"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
