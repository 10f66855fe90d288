package effects

const (
	KindClassResourceUsed     Kind = "ClassResourceUsed"
	KindRageStarted           Kind = "RageStarted"
	KindRageEnded             Kind = "RageEnded"
	KindKiSpent               Kind = "KiSpent"
	KindLayOnHandsSpent       Kind = "LayOnHandsSpent"
	KindSorceryPointsChanged  Kind = "SorceryPointsChanged"
	KindWildShapeStarted      Kind = "WildShapeStarted"
	KindWildShapeEnded        Kind = "WildShapeEnded"
	KindActionSurgeUsed       Kind = "ActionSurgeUsed"
	KindSecondWindUsed        Kind = "SecondWindUsed"
	KindChannelDivinityUsed   Kind = "ChannelDivinityUsed"
	KindBardicInspirationUsed Kind = "BardicInspirationUsed"
)

// ClassResourceUsed is an audit record; the pool changes travel in the
// feature specific effects next to it.
type ClassResourceUsed struct {
	sealed
	CharacterName string `json:"character_name"`
	ResourceName  string `json:"resource_name"`
	Description   string `json:"description"`
}

type RageStarted struct {
	sealed
	CharacterID string `json:"character_id"`
	DamageBonus int    `json:"damage_bonus"`
}

type RageEnded struct {
	sealed
	CharacterID string `json:"character_id"`
	Reason      string `json:"reason"`
}

type KiSpent struct {
	sealed
	CharacterID string `json:"character_id"`
	Points      int    `json:"points"`
	Remaining   int    `json:"remaining"`
}

type LayOnHandsSpent struct {
	sealed
	CharacterID string `json:"character_id"`
	Amount      int    `json:"amount"`
	Remaining   int    `json:"remaining"`
}

// SorceryPointsChanged is negative when points are spent
type SorceryPointsChanged struct {
	sealed
	CharacterID string `json:"character_id"`
	Amount      int    `json:"amount"`
	NewTotal    int    `json:"new_total"`
}

type WildShapeStarted struct {
	sealed
	CharacterID   string `json:"character_id"`
	BeastForm     string `json:"beast_form"`
	BeastHP       int    `json:"beast_hp"`
	UsesRemaining int    `json:"uses_remaining"`
}

type WildShapeEnded struct {
	sealed
	CharacterID string `json:"character_id"`
	Reason      string `json:"reason"`
}

type ActionSurgeUsed struct {
	sealed
	CharacterID string `json:"character_id"`
}

type SecondWindUsed struct {
	sealed
	CharacterID string `json:"character_id"`
}

type ChannelDivinityUsed struct {
	sealed
	CharacterID string `json:"character_id"`
	Option      string `json:"option"`
}

type BardicInspirationUsed struct {
	sealed
	CharacterID string `json:"character_id"`
	TargetName  string `json:"target_name"`
	Remaining   int    `json:"remaining"`
}

func (ClassResourceUsed) Kind() Kind     { return KindClassResourceUsed }
func (RageStarted) Kind() Kind           { return KindRageStarted }
func (RageEnded) Kind() Kind             { return KindRageEnded }
func (KiSpent) Kind() Kind               { return KindKiSpent }
func (LayOnHandsSpent) Kind() Kind       { return KindLayOnHandsSpent }
func (SorceryPointsChanged) Kind() Kind  { return KindSorceryPointsChanged }
func (WildShapeStarted) Kind() Kind      { return KindWildShapeStarted }
func (WildShapeEnded) Kind() Kind        { return KindWildShapeEnded }
func (ActionSurgeUsed) Kind() Kind       { return KindActionSurgeUsed }
func (SecondWindUsed) Kind() Kind        { return KindSecondWindUsed }
func (ChannelDivinityUsed) Kind() Kind   { return KindChannelDivinityUsed }
func (BardicInspirationUsed) Kind() Kind { return KindBardicInspirationUsed }

func init() {
	register[ClassResourceUsed]()
	register[RageStarted]()
	register[RageEnded]()
	register[KiSpent]()
	register[LayOnHandsSpent]()
	register[SorceryPointsChanged]()
	register[WildShapeStarted]()
	register[WildShapeEnded]()
	register[ActionSurgeUsed]()
	register[SecondWindUsed]()
	register[ChannelDivinityUsed]()
	register[BardicInspirationUsed]()
}
