package intents

import (
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

const (
	KindShortRest           Kind = "ShortRest"
	KindLongRest            Kind = "LongRest"
	KindAdvanceTime         Kind = "AdvanceTime"
	KindGainExperience      Kind = "GainExperience"
	KindUseFeature          Kind = "UseFeature"
	KindModifyAbilityScore  Kind = "ModifyAbilityScore"
	KindRememberFact        Kind = "RememberFact"
	KindRegisterConsequence Kind = "RegisterConsequence"
)

type ShortRest struct{ sealed }

type LongRest struct{ sealed }

type AdvanceTime struct {
	sealed
	Minutes int `json:"minutes"`
}

type GainExperience struct {
	sealed
	Amount int `json:"amount"`
}

type UseFeature struct {
	sealed
	CharacterID string `json:"character_id"`
	FeatureName string `json:"feature_name"`
}

// ModifyAbilityScore changes a score by Modifier. An empty Duration is permanent.
type ModifyAbilityScore struct {
	sealed
	Ability  shared.Ability `json:"ability"`
	Modifier int            `json:"modifier"`
	Source   string         `json:"source"`
	Duration string         `json:"duration,omitempty"`
}

// RememberFact records a story fact for whoever keeps the campaign's memory
type RememberFact struct {
	sealed
	SubjectName     string   `json:"subject_name"`
	SubjectType     string   `json:"subject_type"`
	Fact            string   `json:"fact"`
	Category        string   `json:"category"`
	RelatedEntities []string `json:"related_entities,omitempty"`
	Importance      float64  `json:"importance"`
}

type RegisterConsequence struct {
	sealed
	TriggerDescription     string   `json:"trigger_description"`
	ConsequenceDescription string   `json:"consequence_description"`
	Severity               string   `json:"severity"`
	RelatedEntities        []string `json:"related_entities,omitempty"`
	Importance             float64  `json:"importance"`
	ExpiresInTurns         *int     `json:"expires_in_turns,omitempty"`
}

func (ShortRest) Kind() Kind           { return KindShortRest }
func (LongRest) Kind() Kind            { return KindLongRest }
func (AdvanceTime) Kind() Kind         { return KindAdvanceTime }
func (GainExperience) Kind() Kind      { return KindGainExperience }
func (UseFeature) Kind() Kind          { return KindUseFeature }
func (ModifyAbilityScore) Kind() Kind  { return KindModifyAbilityScore }
func (RememberFact) Kind() Kind        { return KindRememberFact }
func (RegisterConsequence) Kind() Kind { return KindRegisterConsequence }

func init() {
	register[ShortRest]()
	register[LongRest]()
	register[AdvanceTime]()
	register[GainExperience]()
	register[UseFeature]()
	register[ModifyAbilityScore]()
	register[RememberFact]()
	register[RegisterConsequence]()
}
