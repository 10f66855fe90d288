package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
)

// Client looks up SRD content on dnd5eapi.co. Keys are API index keys such
// as "fire-bolt" or "chain-mail".
type Client interface {
	GetSpell(key string) (*rulebook.Spell, error)
	GetWeapon(key string) (*rulebook.Weapon, error)
	GetArmor(key string) (*rulebook.Armor, error)
}
