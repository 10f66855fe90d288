package shared

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Ability is one of the six ability scores
type Ability string

const (
	Strength     Ability = "strength"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Charisma     Ability = "charisma"
)

// Abilities lists the scores in sheet order
var Abilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

var titleCaser = cases.Title(language.English)

// Name is the display name, e.g. "Strength"
func (a Ability) Name() string {
	return titleCaser.String(string(a))
}

// Abbreviation is the three letter form, e.g. "STR"
func (a Ability) Abbreviation() string {
	if len(a) < 3 {
		return strings.ToUpper(string(a))
	}
	return strings.ToUpper(string(a)[:3])
}

func (a Ability) Valid() bool {
	for _, known := range Abilities {
		if a == known {
			return true
		}
	}
	return false
}

// ParseAbility accepts full names or abbreviations in any case
func ParseAbility(s string) (Ability, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Abilities {
		if needle == string(a) || needle == strings.ToLower(a.Abbreviation()) {
			return a, nil
		}
	}
	return "", apperrors.InvalidArgumentf("unknown ability %q", s)
}

// Modifier converts a score to its modifier, rounding down
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}
