package shared

import (
	"strings"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// DamageType is the kind of damage dealt
type DamageType string

const (
	Slashing    DamageType = "slashing"
	Piercing    DamageType = "piercing"
	Bludgeoning DamageType = "bludgeoning"
	Fire        DamageType = "fire"
	Cold        DamageType = "cold"
	Lightning   DamageType = "lightning"
	Thunder     DamageType = "thunder"
	Acid        DamageType = "acid"
	Poison      DamageType = "poison"
	Necrotic    DamageType = "necrotic"
	Radiant     DamageType = "radiant"
	Force       DamageType = "force"
	Psychic     DamageType = "psychic"
)

var DamageTypes = []DamageType{
	Slashing, Piercing, Bludgeoning, Fire, Cold, Lightning, Thunder,
	Acid, Poison, Necrotic, Radiant, Force, Psychic,
}

// Name is the lowercase name used in narrative
func (d DamageType) Name() string {
	return string(d)
}

func ParseDamageType(s string) (DamageType, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, d := range DamageTypes {
		if needle == string(d) {
			return d, nil
		}
	}
	return "", apperrors.InvalidArgumentf("unknown damage type %q", s)
}
