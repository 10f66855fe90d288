package shared

import (
	"strings"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Skill is one of the eighteen proficiency skills
type Skill string

const (
	Athletics      Skill = "athletics"
	Acrobatics     Skill = "acrobatics"
	SleightOfHand  Skill = "sleight_of_hand"
	Stealth        Skill = "stealth"
	Arcana         Skill = "arcana"
	History        Skill = "history"
	Investigation  Skill = "investigation"
	Nature         Skill = "nature"
	Religion       Skill = "religion"
	AnimalHandling Skill = "animal_handling"
	Insight        Skill = "insight"
	Medicine       Skill = "medicine"
	Perception     Skill = "perception"
	Survival       Skill = "survival"
	Deception      Skill = "deception"
	Intimidation   Skill = "intimidation"
	Performance    Skill = "performance"
	Persuasion     Skill = "persuasion"
)

type skillInfo struct {
	name    string
	ability Ability
}

var skillTable = map[Skill]skillInfo{
	Athletics:      {"Athletics", Strength},
	Acrobatics:     {"Acrobatics", Dexterity},
	SleightOfHand:  {"Sleight of Hand", Dexterity},
	Stealth:        {"Stealth", Dexterity},
	Arcana:         {"Arcana", Intelligence},
	History:        {"History", Intelligence},
	Investigation:  {"Investigation", Intelligence},
	Nature:         {"Nature", Intelligence},
	Religion:       {"Religion", Intelligence},
	AnimalHandling: {"Animal Handling", Wisdom},
	Insight:        {"Insight", Wisdom},
	Medicine:       {"Medicine", Wisdom},
	Perception:     {"Perception", Wisdom},
	Survival:       {"Survival", Wisdom},
	Deception:      {"Deception", Charisma},
	Intimidation:   {"Intimidation", Charisma},
	Performance:    {"Performance", Charisma},
	Persuasion:     {"Persuasion", Charisma},
}

// Skills lists every skill in sheet order
var Skills = []Skill{
	Athletics, Acrobatics, SleightOfHand, Stealth,
	Arcana, History, Investigation, Nature, Religion,
	AnimalHandling, Insight, Medicine, Perception, Survival,
	Deception, Intimidation, Performance, Persuasion,
}

func (s Skill) Name() string {
	if info, ok := skillTable[s]; ok {
		return info.name
	}
	return string(s)
}

// Ability is the score that governs the skill
func (s Skill) Ability() Ability {
	return skillTable[s].ability
}

func (s Skill) Valid() bool {
	_, ok := skillTable[s]
	return ok
}

// ParseSkill accepts "Sleight of Hand", "sleight_of_hand" or "SleightOfHand"
func ParseSkill(s string) (Skill, error) {
	needle := normalizeSkill(s)
	for _, skill := range Skills {
		if needle == normalizeSkill(string(skill)) {
			return skill, nil
		}
	}
	return "", apperrors.InvalidArgumentf("unknown skill %q", s)
}

func normalizeSkill(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
