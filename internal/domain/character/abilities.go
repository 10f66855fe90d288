package character

import (
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// AbilityScores holds the six raw scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

func NewAbilityScores(str, dex, con, intel, wis, cha int) AbilityScores {
	return AbilityScores{
		Strength:     str,
		Dexterity:    dex,
		Constitution: con,
		Intelligence: intel,
		Wisdom:       wis,
		Charisma:     cha,
	}
}

func (s AbilityScores) Get(a shared.Ability) int {
	switch a {
	case shared.Strength:
		return s.Strength
	case shared.Dexterity:
		return s.Dexterity
	case shared.Constitution:
		return s.Constitution
	case shared.Intelligence:
		return s.Intelligence
	case shared.Wisdom:
		return s.Wisdom
	case shared.Charisma:
		return s.Charisma
	}
	return 10
}

// Set stores a score clamped to 1..30
func (s *AbilityScores) Set(a shared.Ability, value int) {
	value = min(max(value, MinAbilityScore), MaxAbilityScore)
	switch a {
	case shared.Strength:
		s.Strength = value
	case shared.Dexterity:
		s.Dexterity = value
	case shared.Constitution:
		s.Constitution = value
	case shared.Intelligence:
		s.Intelligence = value
	case shared.Wisdom:
		s.Wisdom = value
	case shared.Charisma:
		s.Charisma = value
	}
}

func (s AbilityScores) Modifier(a shared.Ability) int {
	return shared.Modifier(s.Get(a))
}
