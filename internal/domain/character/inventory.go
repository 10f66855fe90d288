package character

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
)

// Item is a stack of one kind of thing in the pack
type Item struct {
	Name        string            `json:"name"`
	Quantity    int               `json:"quantity"`
	Weight      float64           `json:"weight,omitempty"`
	ValueGP     decimal.Decimal   `json:"value_gp"`
	Type        rulebook.ItemType `json:"type"`
	Magical     bool              `json:"magical,omitempty"`
	Description string            `json:"description,omitempty"`
}

type Inventory struct {
	Items  []Item `json:"items"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
}

// Find does a case-insensitive lookup by name
func (inv *Inventory) Find(name string) *Item {
	for i := range inv.Items {
		if strings.EqualFold(inv.Items[i].Name, name) {
			return &inv.Items[i]
		}
	}
	return nil
}

// Add stacks onto an existing same-name item or appends a new one
func (inv *Inventory) Add(item Item) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if existing := inv.Find(item.Name); existing != nil {
		existing.Quantity += item.Quantity
		return
	}
	inv.Items = append(inv.Items, item)
}

// Remove takes quantity of the named item out, dropping the stack when it
// empties. It reports false when there is not enough.
func (inv *Inventory) Remove(name string, quantity int) bool {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range inv.Items {
		if !strings.EqualFold(inv.Items[i].Name, name) {
			continue
		}
		if inv.Items[i].Quantity < quantity {
			return false
		}
		inv.Items[i].Quantity -= quantity
		if inv.Items[i].Quantity == 0 {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
		}
		return true
	}
	return false
}

// TotalWeight is the carried weight of every stack
func (inv *Inventory) TotalWeight() float64 {
	total := 0.0
	for _, item := range inv.Items {
		total += item.Weight * float64(item.Quantity)
	}
	return total
}

// TotalValue sums item values plus coin, in gold pieces
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.NewFromInt(int64(inv.Gold)).Add(decimal.New(int64(inv.Silver), -1))
	for _, item := range inv.Items {
		total = total.Add(item.ValueGP.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (inv Inventory) Clone() Inventory {
	out := inv
	out.Items = append([]Item(nil), inv.Items...)
	return out
}

// EquipmentSlot names where an item is worn or held
type EquipmentSlot string

const (
	SlotArmor    EquipmentSlot = "armor"
	SlotShield   EquipmentSlot = "shield"
	SlotMainHand EquipmentSlot = "main_hand"
	SlotOffHand  EquipmentSlot = "off_hand"
)

// ParseSlot accepts the slot names callers use, including "weapon" for the main hand
func ParseSlot(s string) (EquipmentSlot, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_") {
	case "armor", "armour", "body":
		return SlotArmor, true
	case "shield":
		return SlotShield, true
	case "main_hand", "mainhand", "weapon", "hand":
		return SlotMainHand, true
	case "off_hand", "offhand":
		return SlotOffHand, true
	}
	return "", false
}

type Equipment struct {
	Armor    *rulebook.Armor  `json:"armor,omitempty"`
	Shield   *Item            `json:"shield,omitempty"`
	MainHand *rulebook.Weapon `json:"main_hand,omitempty"`
	OffHand  *Item            `json:"off_hand,omitempty"`
}

// ItemName returns the name of what is in slot, or "" when it is empty
func (e *Equipment) ItemName(slot EquipmentSlot) string {
	switch slot {
	case SlotArmor:
		if e.Armor != nil {
			return e.Armor.Name
		}
	case SlotShield:
		if e.Shield != nil {
			return e.Shield.Name
		}
	case SlotMainHand:
		if e.MainHand != nil {
			return e.MainHand.Name
		}
	case SlotOffHand:
		if e.OffHand != nil {
			return e.OffHand.Name
		}
	}
	return ""
}

// Clear empties slot
func (e *Equipment) Clear(slot EquipmentSlot) {
	switch slot {
	case SlotArmor:
		e.Armor = nil
	case SlotShield:
		e.Shield = nil
	case SlotMainHand:
		e.MainHand = nil
	case SlotOffHand:
		e.OffHand = nil
	}
}

func (e Equipment) Clone() Equipment {
	out := e
	if e.Armor != nil {
		a := *e.Armor
		out.Armor = &a
	}
	if e.Shield != nil {
		s := *e.Shield
		out.Shield = &s
	}
	if e.MainHand != nil {
		w := *e.MainHand
		w.Properties = append([]rulebook.WeaponProperty(nil), e.MainHand.Properties...)
		out.MainHand = &w
	}
	if e.OffHand != nil {
		o := *e.OffHand
		out.OffHand = &o
	}
	return out
}
