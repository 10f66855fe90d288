package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=mockcatalog -source=catalog.go

import (
	"strings"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
)

// Catalog is the static content database the rules engine consults by name.
// Lookups are case-insensitive and return copies the caller may keep.
type Catalog interface {
	Spell(name string) (*rulebook.Spell, bool)
	Weapon(name string) (*rulebook.Weapon, bool)
	Armor(name string) (*rulebook.Armor, bool)
	Potion(name string) (*rulebook.Potion, bool)
	Item(name string) (*rulebook.ItemRecord, bool)
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ItemFor builds an inventory entry for name from whatever the catalog knows
// about it. Unknown names come back as a weightless ItemOther with ok false.
func ItemFor(c Catalog, name string, quantity int) (item character.Item, ok bool) {
	item = character.Item{Name: name, Quantity: quantity, Type: rulebook.ItemOther}
	if c == nil {
		return item, false
	}

	if w, found := c.Weapon(name); found {
		item.Name = w.Name
		item.Type = rulebook.ItemWeapon
		item.Weight = w.Weight
		item.ValueGP = w.ValueGP
		return item, true
	}
	if a, found := c.Armor(name); found {
		item.Name = a.Name
		item.Type = rulebook.ItemArmor
		item.Weight = a.Weight
		item.ValueGP = a.ValueGP
		return item, true
	}
	if p, found := c.Potion(name); found {
		item.Name = p.Name
		item.Type = rulebook.ItemPotion
		item.Weight = p.Weight
		item.ValueGP = p.ValueGP
		item.Magical = true
		return item, true
	}
	if r, found := c.Item(name); found {
		item.Name = r.Name
		item.Type = r.Type
		item.Weight = r.Weight
		item.ValueGP = r.ValueGP
		item.Magical = r.Magical
		item.Description = r.Description
		return item, true
	}
	return item, false
}
