package rulebook

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemShield     ItemType = "shield"
	ItemPotion     ItemType = "potion"
	ItemScroll     ItemType = "scroll"
	ItemWand       ItemType = "wand"
	ItemRing       ItemType = "ring"
	ItemWondrous   ItemType = "wondrous"
	ItemTool       ItemType = "tool"
	ItemGear       ItemType = "adventuring_gear"
	ItemAmmunition ItemType = "ammunition"
	ItemTreasure   ItemType = "treasure"
	ItemOther      ItemType = "other"
)

var itemTypes = []ItemType{
	ItemWeapon, ItemArmor, ItemShield, ItemPotion, ItemScroll, ItemWand, ItemRing,
	ItemWondrous, ItemTool, ItemGear, ItemAmmunition, ItemTreasure, ItemOther,
}

// ParseItemType is lenient: unknown strings become ItemOther
func ParseItemType(s string) ItemType {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	if normalized == "gear" {
		return ItemGear
	}
	for _, t := range itemTypes {
		if string(t) == normalized {
			return t
		}
	}
	return ItemOther
}

type WeaponProperty string

const (
	PropertyFinesse   WeaponProperty = "finesse"
	PropertyLight     WeaponProperty = "light"
	PropertyHeavy     WeaponProperty = "heavy"
	PropertyTwoHanded WeaponProperty = "two_handed"
	PropertyVersatile WeaponProperty = "versatile"
	PropertyThrown    WeaponProperty = "thrown"
	PropertyReach     WeaponProperty = "reach"
	PropertyAmmo      WeaponProperty = "ammunition"
	PropertyLoading   WeaponProperty = "loading"
)

type Weapon struct {
	Name       string            `json:"name" yaml:"name"`
	DamageDice string            `json:"damage_dice" yaml:"damage_dice"`
	DamageType shared.DamageType `json:"damage_type" yaml:"damage_type"`
	Ranged     bool              `json:"ranged,omitempty" yaml:"ranged,omitempty"`
	Martial    bool              `json:"martial,omitempty" yaml:"martial,omitempty"`
	Properties []WeaponProperty  `json:"properties,omitempty" yaml:"properties,omitempty"`
	Weight     float64           `json:"weight,omitempty" yaml:"weight,omitempty"`
	ValueGP    decimal.Decimal   `json:"value_gp" yaml:"value_gp"`
}

func (w *Weapon) HasProperty(p WeaponProperty) bool {
	for _, prop := range w.Properties {
		if prop == p {
			return true
		}
	}
	return false
}

func (w *Weapon) IsFinesse() bool {
	return w.HasProperty(PropertyFinesse)
}

func (w *Weapon) IsTwoHanded() bool {
	return w.HasProperty(PropertyTwoHanded)
}

// DefaultWeapon stands in for a wielded item the catalog does not know
func DefaultWeapon(name string) *Weapon {
	return &Weapon{
		Name:       name,
		DamageDice: "1d8",
		DamageType: shared.Slashing,
		ValueGP:    decimal.Zero,
	}
}

type ArmorType string

const (
	ArmorLight  ArmorType = "light"
	ArmorMedium ArmorType = "medium"
	ArmorHeavy  ArmorType = "heavy"
)

type Armor struct {
	Name                string          `json:"name" yaml:"name"`
	Type                ArmorType       `json:"type" yaml:"type"`
	BaseAC              int             `json:"base_ac" yaml:"base_ac"`
	StrengthRequirement int             `json:"strength_requirement,omitempty" yaml:"strength_requirement,omitempty"`
	StealthDisadvantage bool            `json:"stealth_disadvantage,omitempty" yaml:"stealth_disadvantage,omitempty"`
	Weight              float64         `json:"weight,omitempty" yaml:"weight,omitempty"`
	ValueGP             decimal.Decimal `json:"value_gp" yaml:"value_gp"`
}

// AC is the armor class worn armor grants before a shield
func (a *Armor) AC(dexMod int) int {
	switch a.Type {
	case ArmorLight:
		return a.BaseAC + dexMod
	case ArmorMedium:
		return a.BaseAC + min(dexMod, 2)
	default:
		return a.BaseAC
	}
}

// DefaultArmor stands in for worn armor the catalog does not know
func DefaultArmor(name string) *Armor {
	return &Armor{Name: name, Type: ArmorMedium, BaseAC: 14, ValueGP: decimal.Zero}
}

type Potion struct {
	Name         string          `json:"name" yaml:"name"`
	HealingDice  string          `json:"healing_dice" yaml:"healing_dice"`
	HealingBonus int             `json:"healing_bonus" yaml:"healing_bonus"`
	Weight       float64         `json:"weight,omitempty" yaml:"weight,omitempty"`
	ValueGP      decimal.Decimal `json:"value_gp" yaml:"value_gp"`
}

// HealingNotation is the full heal roll, e.g. "2d4+2"
func (p *Potion) HealingNotation() string {
	if p.HealingDice == "" {
		return "2d4+2"
	}
	if p.HealingBonus == 0 {
		return p.HealingDice
	}
	if p.HealingBonus < 0 {
		return p.HealingDice + "-" + strconv.Itoa(-p.HealingBonus)
	}
	return p.HealingDice + "+" + strconv.Itoa(p.HealingBonus)
}

// ItemRecord is a catalog entry for anything that is not a weapon, armor or potion
type ItemRecord struct {
	Name        string          `json:"name" yaml:"name"`
	Type        ItemType        `json:"type" yaml:"type"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Magical     bool            `json:"magical,omitempty" yaml:"magical,omitempty"`
	Weight      float64         `json:"weight,omitempty" yaml:"weight,omitempty"`
	ValueGP     decimal.Decimal `json:"value_gp" yaml:"value_gp"`
}

// ParseArmorType rejects anything but light, medium or heavy
func ParseArmorType(s string) (ArmorType, error) {
	switch t := ArmorType(strings.ToLower(strings.TrimSpace(s))); t {
	case ArmorLight, ArmorMedium, ArmorHeavy:
		return t, nil
	}
	return "", apperrors.InvalidArgumentf("unknown armor type %q", s)
}
