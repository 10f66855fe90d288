package effects

import (
	"github.com/KirkDiggler/chronicler/internal/dice"
)

const (
	KindDiceRolled       Kind = "DiceRolled"
	KindSneakAttackUsed  Kind = "SneakAttackUsed"
	KindCombatStarted    Kind = "CombatStarted"
	KindCombatEnded      Kind = "CombatEnded"
	KindTurnAdvanced     Kind = "TurnAdvanced"
	KindInitiativeRolled Kind = "InitiativeRolled"
	KindCombatantAdded   Kind = "CombatantAdded"
	KindCheckSucceeded   Kind = "CheckSucceeded"
	KindCheckFailed      Kind = "CheckFailed"
	KindAttackHit        Kind = "AttackHit"
	KindAttackMissed     Kind = "AttackMissed"
)

// DiceRolled records a roll so the log explains the effects that follow it
type DiceRolled struct {
	sealed
	Roll    *dice.Result `json:"roll"`
	Purpose string       `json:"purpose"`
}

type SneakAttackUsed struct {
	sealed
	CharacterID string `json:"character_id"`
	DamageDice  int    `json:"damage_dice"`
}

type CombatStarted struct{ sealed }

type CombatEnded struct{ sealed }

// TurnAdvanced moves the turn pointer and ticks condition durations
type TurnAdvanced struct {
	sealed
	Round            int    `json:"round"`
	CurrentCombatant string `json:"current_combatant"`
}

type InitiativeRolled struct {
	sealed
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Roll        int    `json:"roll"`
	Total       int    `json:"total"`
}

type CombatantAdded struct {
	sealed
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initiative int    `json:"initiative"`
	IsAlly     bool   `json:"is_ally"`
	CurrentHP  int    `json:"current_hp"`
	MaxHP      int    `json:"max_hp"`
	ArmorClass int    `json:"armor_class"`
}

type CheckSucceeded struct {
	sealed
	CheckType string `json:"check_type"`
	Roll      int    `json:"roll"`
	DC        int    `json:"dc"`
}

type CheckFailed struct {
	sealed
	CheckType string `json:"check_type"`
	Roll      int    `json:"roll"`
	DC        int    `json:"dc"`
}

type AttackHit struct {
	sealed
	AttackerName string `json:"attacker_name"`
	TargetName   string `json:"target_name"`
	AttackRoll   int    `json:"attack_roll"`
	TargetAC     int    `json:"target_ac"`
	IsCritical   bool   `json:"is_critical"`
}

type AttackMissed struct {
	sealed
	AttackerName string `json:"attacker_name"`
	TargetName   string `json:"target_name"`
	AttackRoll   int    `json:"attack_roll"`
	TargetAC     int    `json:"target_ac"`
}

func (DiceRolled) Kind() Kind       { return KindDiceRolled }
func (SneakAttackUsed) Kind() Kind  { return KindSneakAttackUsed }
func (CombatStarted) Kind() Kind    { return KindCombatStarted }
func (CombatEnded) Kind() Kind      { return KindCombatEnded }
func (TurnAdvanced) Kind() Kind     { return KindTurnAdvanced }
func (InitiativeRolled) Kind() Kind { return KindInitiativeRolled }
func (CombatantAdded) Kind() Kind   { return KindCombatantAdded }
func (CheckSucceeded) Kind() Kind   { return KindCheckSucceeded }
func (CheckFailed) Kind() Kind      { return KindCheckFailed }
func (AttackHit) Kind() Kind        { return KindAttackHit }
func (AttackMissed) Kind() Kind     { return KindAttackMissed }

func init() {
	register[DiceRolled]()
	register[SneakAttackUsed]()
	register[CombatStarted]()
	register[CombatEnded]()
	register[TurnAdvanced]()
	register[InitiativeRolled]()
	register[CombatantAdded]()
	register[CheckSucceeded]()
	register[CheckFailed]()
	register[AttackHit]()
	register[AttackMissed]()
}
