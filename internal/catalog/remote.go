package catalog

import (
	"log"
	"sync"

	"github.com/KirkDiggler/chronicler/internal/clients/dnd5e"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
)

// Remote answers spell, weapon and armor lookups from the SRD API. Results,
// including misses, are cached for the life of the value so a resolver
// never pays for the same round trip twice.
type Remote struct {
	client dnd5e.Client

	mu      sync.RWMutex
	spells  map[string]*rulebook.Spell
	weapons map[string]*rulebook.Weapon
	armor   map[string]*rulebook.Armor
}

type RemoteConfig struct {
	Client dnd5e.Client
}

func NewRemote(cfg *RemoteConfig) *Remote {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Client == nil {
		panic("dnd5e client is required")
	}

	return &Remote{
		client:  cfg.Client,
		spells:  make(map[string]*rulebook.Spell),
		weapons: make(map[string]*rulebook.Weapon),
		armor:   make(map[string]*rulebook.Armor),
	}
}

func (r *Remote) Spell(name string) (*rulebook.Spell, bool) {
	return lookup(r, r.spells, name, r.client.GetSpell)
}

func (r *Remote) Weapon(name string) (*rulebook.Weapon, bool) {
	return lookup(r, r.weapons, name, r.client.GetWeapon)
}

func (r *Remote) Armor(name string) (*rulebook.Armor, bool) {
	return lookup(r, r.armor, name, r.client.GetArmor)
}

// Potion is not served by the API
func (r *Remote) Potion(string) (*rulebook.Potion, bool) {
	return nil, false
}

// Item is not served by the API
func (r *Remote) Item(string) (*rulebook.ItemRecord, bool) {
	return nil, false
}

func lookup[T any](r *Remote, cache map[string]*T, name string, fetch func(string) (*T, error)) (*T, bool) {
	k := dnd5e.Key(name)
	if k == "" {
		return nil, false
	}

	r.mu.RLock()
	cached, seen := cache[k]
	r.mu.RUnlock()
	if seen {
		if cached == nil {
			return nil, false
		}
		out := *cached
		return &out, true
	}

	v, err := fetch(k)
	if err != nil {
		log.Printf("Catalog: remote lookup of %q failed: %v", k, err)
		v = nil
	}

	r.mu.Lock()
	cache[k] = v
	r.mu.Unlock()

	if v == nil {
		return nil, false
	}
	out := *v
	return &out, true
}
