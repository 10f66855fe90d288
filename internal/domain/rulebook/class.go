package rulebook

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Class is a character class
type Class string

const (
	Barbarian Class = "barbarian"
	Bard      Class = "bard"
	Cleric    Class = "cleric"
	Druid     Class = "druid"
	Fighter   Class = "fighter"
	Monk      Class = "monk"
	Paladin   Class = "paladin"
	Ranger    Class = "ranger"
	Rogue     Class = "rogue"
	Sorcerer  Class = "sorcerer"
	Warlock   Class = "warlock"
	Wizard    Class = "wizard"
)

var Classes = []Class{Barbarian, Bard, Cleric, Druid, Fighter, Monk, Paladin, Ranger, Rogue, Sorcerer, Warlock, Wizard}

var titleCaser = cases.Title(language.English)

func (c Class) Name() string {
	return titleCaser.String(string(c))
}

// HitDie is the number of sides on the class hit die
func (c Class) HitDie() int {
	switch c {
	case Barbarian:
		return 12
	case Fighter, Paladin, Ranger:
		return 10
	case Sorcerer, Wizard:
		return 6
	default:
		return 8
	}
}

// HitDieAverage is the fixed hit point gain per level, e.g. 6 for a d10
func (c Class) HitDieAverage() int {
	return c.HitDie()/2 + 1
}

// SpellcastingAbility returns the casting ability and whether the class casts at all
func (c Class) SpellcastingAbility() (shared.Ability, bool) {
	switch c {
	case Bard, Sorcerer, Warlock, Paladin:
		return shared.Charisma, true
	case Cleric, Druid, Ranger:
		return shared.Wisdom, true
	case Wizard:
		return shared.Intelligence, true
	}
	return "", false
}

// SpellSlotsAtLevel returns slot totals for spell levels 1-9
func (c Class) SpellSlotsAtLevel(level int) [9]int {
	switch c {
	case Bard, Cleric, Druid, Sorcerer, Wizard:
		return slotRow(fullCasterSlots, level)
	case Paladin, Ranger:
		return slotRow(halfCasterSlots, level)
	case Warlock:
		return warlockSlots(level)
	}
	return [9]int{}
}

// HasPactMagic reports whether slots come back on a short rest
func (c Class) HasPactMagic() bool {
	return c == Warlock
}

// SavingThrows lists the class's proficient saves
func (c Class) SavingThrows() []shared.Ability {
	switch c {
	case Barbarian, Fighter:
		return []shared.Ability{shared.Strength, shared.Constitution}
	case Bard:
		return []shared.Ability{shared.Dexterity, shared.Charisma}
	case Cleric, Paladin, Warlock:
		return []shared.Ability{shared.Wisdom, shared.Charisma}
	case Druid, Wizard:
		return []shared.Ability{shared.Intelligence, shared.Wisdom}
	case Monk, Ranger:
		return []shared.Ability{shared.Strength, shared.Dexterity}
	case Rogue:
		return []shared.Ability{shared.Dexterity, shared.Intelligence}
	case Sorcerer:
		return []shared.Ability{shared.Constitution, shared.Charisma}
	}
	return nil
}

func (c Class) Valid() bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", apperrors.InvalidArgumentf("unknown class %q", s)
	}
	return c, nil
}

// UnlimitedUses marks a feature that no longer runs out
const UnlimitedUses = 255

// RageUses is the number of rages per long rest
func RageUses(level int) int {
	switch {
	case level >= 20:
		return UnlimitedUses
	case level >= 17:
		return 6
	case level >= 12:
		return 5
	case level >= 6:
		return 4
	case level >= 3:
		return 3
	default:
		return 2
	}
}

// RageDamageBonus is the melee damage bonus while raging
func RageDamageBonus(level int) int {
	switch {
	case level >= 16:
		return 4
	case level >= 9:
		return 3
	default:
		return 2
	}
}

// ProficiencyBonus for a total character level
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// ExperienceThresholds is the XP needed for each level; index 0 is level 1
var ExperienceThresholds = [20]int{
	0, 300, 900, 2700, 6500, 14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000, 195000, 225000, 265000, 305000, 355000,
}

// LevelForExperience is the highest level whose threshold xp meets
func LevelForExperience(xp int) int {
	level := 1
	for i, threshold := range ExperienceThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}
