package conditions

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// ConditionType is one of the standard conditions
type ConditionType string

const (
	Blinded       ConditionType = "blinded"
	Charmed       ConditionType = "charmed"
	Deafened      ConditionType = "deafened"
	Frightened    ConditionType = "frightened"
	Grappled      ConditionType = "grappled"
	Incapacitated ConditionType = "incapacitated"
	Invisible     ConditionType = "invisible"
	Paralyzed     ConditionType = "paralyzed"
	Petrified     ConditionType = "petrified"
	Poisoned      ConditionType = "poisoned"
	Prone         ConditionType = "prone"
	Restrained    ConditionType = "restrained"
	Stunned       ConditionType = "stunned"
	Unconscious   ConditionType = "unconscious"
	Exhaustion    ConditionType = "exhaustion" // levels 1-6
)

const MaxExhaustionLevel = 6

var All = []ConditionType{
	Blinded, Charmed, Deafened, Frightened, Grappled, Incapacitated, Invisible,
	Paralyzed, Petrified, Poisoned, Prone, Restrained, Stunned, Unconscious, Exhaustion,
}

var titleCaser = cases.Title(language.English)

// Name is the display name, e.g. "Unconscious"
func (c ConditionType) Name() string {
	return titleCaser.String(string(c))
}

// IsIncapacitating reports whether the condition stops actions and reactions
func (c ConditionType) IsIncapacitating() bool {
	switch c {
	case Incapacitated, Paralyzed, Petrified, Stunned, Unconscious:
		return true
	}
	return false
}

// BlocksMovement reports whether the condition sets speed to 0
func (c ConditionType) BlocksMovement() bool {
	switch c {
	case Grappled, Restrained, Paralyzed, Petrified, Stunned, Unconscious:
		return true
	}
	return false
}

func (c ConditionType) Valid() bool {
	for _, known := range All {
		if c == known {
			return true
		}
	}
	return false
}

// Parse accepts any casing of a condition name
func Parse(s string) (ConditionType, error) {
	c := ConditionType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", apperrors.InvalidArgumentf("unknown condition %q", s)
	}
	return c, nil
}

// Label renders a condition with its level where it has one
func Label(c ConditionType, level int) string {
	if c == Exhaustion && level > 0 {
		return fmt.Sprintf("%s (%d)", c.Name(), level)
	}
	return c.Name()
}
