package rulebook

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

type SpellSchool string

const (
	Abjuration    SpellSchool = "abjuration"
	Conjuration   SpellSchool = "conjuration"
	Divination    SpellSchool = "divination"
	Enchantment   SpellSchool = "enchantment"
	Evocation     SpellSchool = "evocation"
	Illusion      SpellSchool = "illusion"
	Necromancy    SpellSchool = "necromancy"
	Transmutation SpellSchool = "transmutation"
)

type SpellAttackType string

const (
	SpellAttackNone   SpellAttackType = ""
	SpellAttackMelee  SpellAttackType = "melee"
	SpellAttackRanged SpellAttackType = "ranged"
)

// ScalingKind says how a spell's damage grows
type ScalingKind string

const (
	ScalingNone    ScalingKind = "none"
	ScalingCantrip ScalingKind = "cantrip"
	ScalingPerSlot ScalingKind = "per_slot"
)

type DamageScaling struct {
	Kind      ScalingKind `json:"kind" yaml:"kind"`
	ExtraDice string      `json:"extra_dice,omitempty" yaml:"extra_dice,omitempty"`
}

type Components struct {
	Verbal   bool   `json:"verbal" yaml:"verbal"`
	Somatic  bool   `json:"somatic" yaml:"somatic"`
	Material string `json:"material,omitempty" yaml:"material,omitempty"`
}

// String renders components the way a spell card does, e.g. "V, S, M (a holy symbol)"
func (c Components) String() string {
	var parts []string
	if c.Verbal {
		parts = append(parts, "V")
	}
	if c.Somatic {
		parts = append(parts, "S")
	}
	if c.Material != "" {
		parts = append(parts, fmt.Sprintf("M (%s)", c.Material))
	}
	return strings.Join(parts, ", ")
}

type AreaOfEffect struct {
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty"`
	Size  int    `json:"size,omitempty" yaml:"size,omitempty"`
	Width int    `json:"width,omitempty" yaml:"width,omitempty"`
}

// Spell is one entry of the static spell catalog
type Spell struct {
	Name          string            `json:"name" yaml:"name"`
	Level         int               `json:"level" yaml:"level"`
	School        SpellSchool       `json:"school" yaml:"school"`
	CastingTime   string            `json:"casting_time" yaml:"casting_time"`
	Range         string            `json:"range" yaml:"range"`
	Components    Components        `json:"components" yaml:"components"`
	Duration      string            `json:"duration" yaml:"duration"`
	Concentration bool              `json:"concentration,omitempty" yaml:"concentration,omitempty"`
	Ritual        bool              `json:"ritual,omitempty" yaml:"ritual,omitempty"`
	Description   string            `json:"description" yaml:"description"`
	DamageDice    string            `json:"damage_dice,omitempty" yaml:"damage_dice,omitempty"`
	DamageType    shared.DamageType `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`
	Scaling       DamageScaling     `json:"scaling" yaml:"scaling"`
	HealingDice   string            `json:"healing_dice,omitempty" yaml:"healing_dice,omitempty"`
	SaveType      shared.Ability    `json:"save_type,omitempty" yaml:"save_type,omitempty"`
	SaveEffect    string            `json:"save_effect,omitempty" yaml:"save_effect,omitempty"`
	AttackType    SpellAttackType   `json:"attack_type,omitempty" yaml:"attack_type,omitempty"`
	Area          AreaOfEffect      `json:"area,omitempty" yaml:"area,omitempty"`
	Classes       []Class           `json:"classes" yaml:"classes"`
}

func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// CantripDiceCount is the number of damage dice a cantrip rolls at a caster level
func CantripDiceCount(casterLevel int) int {
	switch {
	case casterLevel >= 17:
		return 4
	case casterLevel >= 11:
		return 3
	case casterLevel >= 5:
		return 2
	default:
		return 1
	}
}

// EffectiveDamage returns the damage expression for a cast at slotLevel by a
// caster of casterLevel. ok is false for spells without damage.
func (s *Spell) EffectiveDamage(casterLevel, slotLevel int) (expr dice.Expression, ok bool) {
	if s.DamageDice == "" {
		return dice.Expression{}, false
	}
	base, err := dice.Parse(s.DamageDice)
	if err != nil {
		return dice.Expression{}, false
	}
	return s.scale(base, casterLevel, slotLevel), true
}

// EffectiveHealing returns the healing dice for a cast at slotLevel, without the
// caster's modifier.
func (s *Spell) EffectiveHealing(slotLevel int) (expr dice.Expression, ok bool) {
	if s.HealingDice == "" {
		return dice.Expression{}, false
	}
	base, err := dice.Parse(s.HealingDice)
	if err != nil {
		return dice.Expression{}, false
	}
	return s.scale(base, 0, slotLevel), true
}

func (s *Spell) scale(base dice.Expression, casterLevel, slotLevel int) dice.Expression {
	switch s.Scaling.Kind {
	case ScalingCantrip:
		if casterLevel <= 0 {
			return base
		}
		return base.MultiplyDice(CantripDiceCount(casterLevel))
	case ScalingPerSlot:
		if slotLevel <= s.Level || s.Scaling.ExtraDice == "" {
			return base
		}
		extra, err := dice.Parse(s.Scaling.ExtraDice)
		if err != nil {
			return base
		}
		return base.AddDice(extra, slotLevel-s.Level)
	}
	return base
}

// CastableBy reports whether the class has the spell on its list
func (s *Spell) CastableBy(c Class) bool {
	for _, known := range s.Classes {
		if known == c {
			return true
		}
	}
	return false
}
