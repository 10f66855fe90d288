package catalog

import (
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
)

// Chain asks each catalog in order and returns the first hit
type Chain []Catalog

func (c Chain) Spell(name string) (*rulebook.Spell, bool) {
	for _, cat := range c {
		if s, ok := cat.Spell(name); ok {
			return s, true
		}
	}
	return nil, false
}

func (c Chain) Weapon(name string) (*rulebook.Weapon, bool) {
	for _, cat := range c {
		if w, ok := cat.Weapon(name); ok {
			return w, true
		}
	}
	return nil, false
}

func (c Chain) Armor(name string) (*rulebook.Armor, bool) {
	for _, cat := range c {
		if a, ok := cat.Armor(name); ok {
			return a, true
		}
	}
	return nil, false
}

func (c Chain) Potion(name string) (*rulebook.Potion, bool) {
	for _, cat := range c {
		if p, ok := cat.Potion(name); ok {
			return p, true
		}
	}
	return nil, false
}

func (c Chain) Item(name string) (*rulebook.ItemRecord, bool) {
	for _, cat := range c {
		if it, ok := cat.Item(name); ok {
			return it, true
		}
	}
	return nil, false
}
