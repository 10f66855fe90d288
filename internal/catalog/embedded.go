package catalog

import (
	"embed"
	"errors"
	"io/fs"
	"log"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	spellsFile  = "spells.yaml"
	weaponsFile = "weapons.yaml"
	armorFile   = "armor.yaml"
	potionsFile = "potions.yaml"
	itemsFile   = "items.yaml"
)

// Static is an in-memory catalog loaded from YAML tables
type Static struct {
	spells  map[string]*rulebook.Spell
	weapons map[string]*rulebook.Weapon
	armor   map[string]*rulebook.Armor
	potions map[string]*rulebook.Potion
	items   map[string]*rulebook.ItemRecord
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Static
)

// Default returns the SRD catalog compiled into the binary. The embedded
// tables are covered by tests, so a load failure here is a programming error.
func Default() *Static {
	defaultOnce.Do(func() {
		c, err := Load(dataFS, "data")
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads the catalog tables from dir inside fsys. Missing tables are
// treated as empty so a partial override directory is valid.
func Load(fsys fs.FS, dir string) (*Static, error) {
	c := &Static{
		spells:  make(map[string]*rulebook.Spell),
		weapons: make(map[string]*rulebook.Weapon),
		armor:   make(map[string]*rulebook.Armor),
		potions: make(map[string]*rulebook.Potion),
		items:   make(map[string]*rulebook.ItemRecord),
	}

	var spells []*rulebook.Spell
	if err := readTable(fsys, path.Join(dir, spellsFile), &spells); err != nil {
		return nil, err
	}
	for _, s := range spells {
		if err := validateSpell(s); err != nil {
			return nil, err
		}
		if err := put(c.spells, s.Name, s); err != nil {
			return nil, err
		}
	}

	var weapons []*rulebook.Weapon
	if err := readTable(fsys, path.Join(dir, weaponsFile), &weapons); err != nil {
		return nil, err
	}
	for _, w := range weapons {
		if _, err := dice.Parse(w.DamageDice); err != nil {
			return nil, apperrors.Wrapf(err, "weapon %s", w.Name)
		}
		if err := put(c.weapons, w.Name, w); err != nil {
			return nil, err
		}
	}

	var armor []*rulebook.Armor
	if err := readTable(fsys, path.Join(dir, armorFile), &armor); err != nil {
		return nil, err
	}
	for _, a := range armor {
		if _, err := rulebook.ParseArmorType(string(a.Type)); err != nil {
			return nil, apperrors.Wrapf(err, "armor %s", a.Name)
		}
		if err := put(c.armor, a.Name, a); err != nil {
			return nil, err
		}
	}

	var potions []*rulebook.Potion
	if err := readTable(fsys, path.Join(dir, potionsFile), &potions); err != nil {
		return nil, err
	}
	for _, p := range potions {
		if _, err := dice.Parse(p.HealingNotation()); err != nil {
			return nil, apperrors.Wrapf(err, "potion %s", p.Name)
		}
		if err := put(c.potions, p.Name, p); err != nil {
			return nil, err
		}
	}

	var items []*rulebook.ItemRecord
	if err := readTable(fsys, path.Join(dir, itemsFile), &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		it.Type = rulebook.ParseItemType(string(it.Type))
		if err := put(c.items, it.Name, it); err != nil {
			return nil, err
		}
	}

	log.Printf("Catalog: loaded %d spells, %d weapons, %d armor, %d potions, %d items",
		len(c.spells), len(c.weapons), len(c.armor), len(c.potions), len(c.items))

	return c, nil
}

func readTable(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to parse "+name)
	}
	return nil
}

func put[T any](m map[string]*T, name string, v *T) error {
	if name == "" {
		return apperrors.MissingParam("name")
	}
	k := key(name)
	if _, exists := m[k]; exists {
		return apperrors.AlreadyExistsf("duplicate catalog entry %q", name)
	}
	m[k] = v
	return nil
}

func validateSpell(s *rulebook.Spell) error {
	if s.Level < 0 || s.Level > 9 {
		return apperrors.InvalidArgumentf("spell %s has level %d", s.Name, s.Level)
	}
	for _, notation := range []string{s.DamageDice, s.HealingDice, s.Scaling.ExtraDice} {
		if notation == "" {
			continue
		}
		if _, err := dice.Parse(notation); err != nil {
			return apperrors.Wrapf(err, "spell %s", s.Name)
		}
	}
	if s.Scaling.Kind == "" {
		s.Scaling.Kind = rulebook.ScalingNone
	}
	return nil
}

func (c *Static) Spell(name string) (*rulebook.Spell, bool) {
	s, ok := c.spells[key(name)]
	if !ok {
		return nil, false
	}
	out := *s
	return &out, true
}

func (c *Static) Weapon(name string) (*rulebook.Weapon, bool) {
	w, ok := c.weapons[key(name)]
	if !ok {
		return nil, false
	}
	out := *w
	return &out, true
}

func (c *Static) Armor(name string) (*rulebook.Armor, bool) {
	a, ok := c.armor[key(name)]
	if !ok {
		return nil, false
	}
	out := *a
	return &out, true
}

func (c *Static) Potion(name string) (*rulebook.Potion, bool) {
	p, ok := c.potions[key(name)]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}

func (c *Static) Item(name string) (*rulebook.ItemRecord, bool) {
	it, ok := c.items[key(name)]
	if !ok {
		return nil, false
	}
	out := *it
	return &out, true
}

// Spells lists every spell ordered by level, then name
func (c *Static) Spells() []*rulebook.Spell {
	out := make([]*rulebook.Spell, 0, len(c.spells))
	for _, s := range c.spells {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SpellsForClass lists the spells on a class's list, in Spells order
func (c *Static) SpellsForClass(class rulebook.Class) []*rulebook.Spell {
	var out []*rulebook.Spell
	for _, s := range c.Spells() {
		if s.CastableBy(class) {
			out = append(out, s)
		}
	}
	return out
}
