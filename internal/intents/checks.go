package intents

import (
	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

const (
	KindSkillCheck   Kind = "SkillCheck"
	KindAbilityCheck Kind = "AbilityCheck"
	KindSavingThrow  Kind = "SavingThrow"
	KindRollDice     Kind = "RollDice"
	KindMove         Kind = "Move"
)

type SkillCheck struct {
	sealed
	CharacterID string         `json:"character_id"`
	Skill       shared.Skill   `json:"skill"`
	DC          int            `json:"dc"`
	Advantage   dice.Advantage `json:"advantage"`
	Description string         `json:"description,omitempty"`
}

// AbilityCheck is a raw ability roll with no skill attached
type AbilityCheck struct {
	sealed
	CharacterID string         `json:"character_id"`
	Ability     shared.Ability `json:"ability"`
	DC          int            `json:"dc"`
	Advantage   dice.Advantage `json:"advantage"`
	Description string         `json:"description,omitempty"`
}

type SavingThrow struct {
	sealed
	CharacterID string         `json:"character_id"`
	Ability     shared.Ability `json:"ability"`
	DC          int            `json:"dc"`
	Advantage   dice.Advantage `json:"advantage"`
	Source      string         `json:"source"`
}

// RollDice is a free-form roll not tied to any rule
type RollDice struct {
	sealed
	Notation string `json:"notation"`
	Purpose  string `json:"purpose"`
}

type Move struct {
	sealed
	CharacterID  string `json:"character_id"`
	Destination  string `json:"destination"`
	DistanceFeet int    `json:"distance_feet,omitempty"`
}

func (SkillCheck) Kind() Kind   { return KindSkillCheck }
func (AbilityCheck) Kind() Kind { return KindAbilityCheck }
func (SavingThrow) Kind() Kind  { return KindSavingThrow }
func (RollDice) Kind() Kind     { return KindRollDice }
func (Move) Kind() Kind         { return KindMove }

func init() {
	register[SkillCheck]()
	register[AbilityCheck]()
	register[SavingThrow]()
	register[RollDice]()
	register[Move]()
}
