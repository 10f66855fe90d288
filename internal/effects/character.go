package effects

import (
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

const (
	KindHPChanged               Kind = "HPChanged"
	KindConditionApplied        Kind = "ConditionApplied"
	KindConditionRemoved        Kind = "ConditionRemoved"
	KindDeathSaveFailure        Kind = "DeathSaveFailure"
	KindDeathSaveSuccess        Kind = "DeathSaveSuccess"
	KindDeathSavesReset         Kind = "DeathSavesReset"
	KindStabilized              Kind = "Stabilized"
	KindCharacterDied           Kind = "CharacterDied"
	KindConcentrationBroken     Kind = "ConcentrationBroken"
	KindConcentrationMaintained Kind = "ConcentrationMaintained"
	KindExperienceGained        Kind = "ExperienceGained"
	KindLevelUp                 Kind = "LevelUp"
	KindFeatureUsed             Kind = "FeatureUsed"
	KindSpellSlotUsed           Kind = "SpellSlotUsed"
	KindSpellSlotRestored       Kind = "SpellSlotRestored"
	KindAbilityScoreModified    Kind = "AbilityScoreModified"
	KindRestCompleted           Kind = "RestCompleted"
)

// HPChanged is damage when Amount is negative and healing when positive.
// NewCurrent and NewMax are the resolver's projection, for narration.
type HPChanged struct {
	sealed
	TargetID      string `json:"target_id"`
	Amount        int    `json:"amount"`
	NewCurrent    int    `json:"new_current"`
	NewMax        int    `json:"new_max"`
	DroppedToZero bool   `json:"dropped_to_zero"`
}

type ConditionApplied struct {
	sealed
	TargetID       string                   `json:"target_id"`
	Condition      conditions.ConditionType `json:"condition"`
	Level          int                      `json:"level,omitempty"`
	Source         string                   `json:"source"`
	DurationRounds *int                     `json:"duration_rounds,omitempty"`
}

type ConditionRemoved struct {
	sealed
	TargetID  string                   `json:"target_id"`
	Condition conditions.ConditionType `json:"condition"`
}

// DeathSaveFailure adds Failures to the running count
type DeathSaveFailure struct {
	sealed
	TargetID      string `json:"target_id"`
	Failures      int    `json:"failures"`
	TotalFailures int    `json:"total_failures"`
	Source        string `json:"source"`
}

type DeathSaveSuccess struct {
	sealed
	TargetID       string `json:"target_id"`
	Roll           int    `json:"roll"`
	TotalSuccesses int    `json:"total_successes"`
}

type DeathSavesReset struct {
	sealed
	TargetID string `json:"target_id"`
}

type Stabilized struct {
	sealed
	TargetID string `json:"target_id"`
}

type CharacterDied struct {
	sealed
	TargetID string `json:"target_id"`
	Cause    string `json:"cause"`
}

type ConcentrationBroken struct {
	sealed
	CharacterID string `json:"character_id"`
	SpellName   string `json:"spell_name"`
	DamageTaken int    `json:"damage_taken"`
	Roll        int    `json:"roll"`
	DC          int    `json:"dc"`
}

type ConcentrationMaintained struct {
	sealed
	CharacterID string `json:"character_id"`
	SpellName   string `json:"spell_name"`
	Roll        int    `json:"roll"`
	DC          int    `json:"dc"`
}

type ExperienceGained struct {
	sealed
	Amount   int `json:"amount"`
	NewTotal int `json:"new_total"`
}

type LevelUp struct {
	sealed
	NewLevel int `json:"new_level"`
}

type FeatureUsed struct {
	sealed
	FeatureName   string `json:"feature_name"`
	UsesRemaining int    `json:"uses_remaining"`
}

type SpellSlotUsed struct {
	sealed
	Level     int `json:"level"`
	Remaining int `json:"remaining"`
}

type SpellSlotRestored struct {
	sealed
	Level        int `json:"level"`
	NewRemaining int `json:"new_remaining"`
}

type AbilityScoreModified struct {
	sealed
	Ability  shared.Ability `json:"ability"`
	Modifier int            `json:"modifier"`
	Source   string         `json:"source"`
}

type RestType string

const (
	RestShort RestType = "short"
	RestLong  RestType = "long"
)

type RestCompleted struct {
	sealed
	RestType RestType `json:"rest_type"`
}

func (HPChanged) Kind() Kind               { return KindHPChanged }
func (ConditionApplied) Kind() Kind        { return KindConditionApplied }
func (ConditionRemoved) Kind() Kind        { return KindConditionRemoved }
func (DeathSaveFailure) Kind() Kind        { return KindDeathSaveFailure }
func (DeathSaveSuccess) Kind() Kind        { return KindDeathSaveSuccess }
func (DeathSavesReset) Kind() Kind         { return KindDeathSavesReset }
func (Stabilized) Kind() Kind              { return KindStabilized }
func (CharacterDied) Kind() Kind           { return KindCharacterDied }
func (ConcentrationBroken) Kind() Kind     { return KindConcentrationBroken }
func (ConcentrationMaintained) Kind() Kind { return KindConcentrationMaintained }
func (ExperienceGained) Kind() Kind        { return KindExperienceGained }
func (LevelUp) Kind() Kind                 { return KindLevelUp }
func (FeatureUsed) Kind() Kind             { return KindFeatureUsed }
func (SpellSlotUsed) Kind() Kind           { return KindSpellSlotUsed }
func (SpellSlotRestored) Kind() Kind       { return KindSpellSlotRestored }
func (AbilityScoreModified) Kind() Kind    { return KindAbilityScoreModified }
func (RestCompleted) Kind() Kind           { return KindRestCompleted }

func init() {
	register[HPChanged]()
	register[ConditionApplied]()
	register[ConditionRemoved]()
	register[DeathSaveFailure]()
	register[DeathSaveSuccess]()
	register[DeathSavesReset]()
	register[Stabilized]()
	register[CharacterDied]()
	register[ConcentrationBroken]()
	register[ConcentrationMaintained]()
	register[ExperienceGained]()
	register[LevelUp]()
	register[FeatureUsed]()
	register[SpellSlotUsed]()
	register[SpellSlotRestored]()
	register[AbilityScoreModified]()
	register[RestCompleted]()
}
