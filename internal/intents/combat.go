package intents

import (
	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

const (
	KindAttack             Kind = "Attack"
	KindDamage             Kind = "Damage"
	KindHeal               Kind = "Heal"
	KindApplyCondition     Kind = "ApplyCondition"
	KindRemoveCondition    Kind = "RemoveCondition"
	KindStartCombat        Kind = "StartCombat"
	KindEndCombat          Kind = "EndCombat"
	KindNextTurn           Kind = "NextTurn"
	KindRollInitiative     Kind = "RollInitiative"
	KindDeathSave          Kind = "DeathSave"
	KindConcentrationCheck Kind = "ConcentrationCheck"
)

// Attack with a weapon. An empty WeaponName uses whatever is in hand.
type Attack struct {
	sealed
	AttackerID string         `json:"attacker_id"`
	TargetID   string         `json:"target_id"`
	WeaponName string         `json:"weapon_name,omitempty"`
	Advantage  dice.Advantage `json:"advantage"`
}

type Damage struct {
	sealed
	TargetID   string            `json:"target_id"`
	Amount     int               `json:"amount"`
	DamageType shared.DamageType `json:"damage_type"`
	Source     string            `json:"source"`
}

type Heal struct {
	sealed
	TargetID string `json:"target_id"`
	Amount   int    `json:"amount"`
	Source   string `json:"source"`
}

// ApplyCondition adds a condition. Level only matters for exhaustion and
// a nil DurationRounds lasts until removed.
type ApplyCondition struct {
	sealed
	TargetID       string                   `json:"target_id"`
	Condition      conditions.ConditionType `json:"condition"`
	Level          int                      `json:"level,omitempty"`
	Source         string                   `json:"source"`
	DurationRounds *int                     `json:"duration_rounds,omitempty"`
}

type RemoveCondition struct {
	sealed
	TargetID  string                   `json:"target_id"`
	Condition conditions.ConditionType `json:"condition"`
}

// CombatantInit describes one participant when a fight starts
type CombatantInit struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	IsPlayer           bool   `json:"is_player"`
	IsAlly             bool   `json:"is_ally"`
	CurrentHP          int    `json:"current_hp"`
	MaxHP              int    `json:"max_hp"`
	ArmorClass         int    `json:"armor_class"`
	InitiativeModifier int    `json:"initiative_modifier"`
}

type StartCombat struct {
	sealed
	Combatants []CombatantInit `json:"combatants"`
}

type EndCombat struct{ sealed }

type NextTurn struct{ sealed }

type RollInitiative struct {
	sealed
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Modifier    int    `json:"modifier"`
	IsPlayer    bool   `json:"is_player"`
}

type DeathSave struct {
	sealed
	CharacterID string `json:"character_id"`
}

type ConcentrationCheck struct {
	sealed
	CharacterID string `json:"character_id"`
	DamageTaken int    `json:"damage_taken"`
	SpellName   string `json:"spell_name"`
}

func (Attack) Kind() Kind             { return KindAttack }
func (Damage) Kind() Kind             { return KindDamage }
func (Heal) Kind() Kind               { return KindHeal }
func (ApplyCondition) Kind() Kind     { return KindApplyCondition }
func (RemoveCondition) Kind() Kind    { return KindRemoveCondition }
func (StartCombat) Kind() Kind        { return KindStartCombat }
func (EndCombat) Kind() Kind          { return KindEndCombat }
func (NextTurn) Kind() Kind           { return KindNextTurn }
func (RollInitiative) Kind() Kind     { return KindRollInitiative }
func (DeathSave) Kind() Kind          { return KindDeathSave }
func (ConcentrationCheck) Kind() Kind { return KindConcentrationCheck }

func init() {
	register[Attack]()
	register[Damage]()
	register[Heal]()
	register[ApplyCondition]()
	register[RemoveCondition]()
	register[StartCombat]()
	register[EndCombat]()
	register[NextTurn]()
	register[RollInitiative]()
	register[DeathSave]()
	register[ConcentrationCheck]()
}
