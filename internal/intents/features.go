package intents

const (
	KindUseRage              Kind = "UseRage"
	KindEndRage              Kind = "EndRage"
	KindUseKi                Kind = "UseKi"
	KindUseLayOnHands        Kind = "UseLayOnHands"
	KindUseDivineSmite       Kind = "UseDivineSmite"
	KindUseWildShape         Kind = "UseWildShape"
	KindEndWildShape         Kind = "EndWildShape"
	KindUseChannelDivinity   Kind = "UseChannelDivinity"
	KindUseBardicInspiration Kind = "UseBardicInspiration"
	KindUseActionSurge       Kind = "UseActionSurge"
	KindUseSecondWind        Kind = "UseSecondWind"
	KindUseSorceryPoints     Kind = "UseSorceryPoints"
)

type UseRage struct {
	sealed
	CharacterID string `json:"character_id"`
}

type EndRage struct {
	sealed
	CharacterID string `json:"character_id"`
	Reason      string `json:"reason"`
}

type UseKi struct {
	sealed
	CharacterID string `json:"character_id"`
	Points      int    `json:"points"`
	Ability     string `json:"ability"`
}

type UseLayOnHands struct {
	sealed
	CharacterID      string `json:"character_id"`
	TargetName       string `json:"target_name"`
	HPAmount         int    `json:"hp_amount"`
	CureDisease      bool   `json:"cure_disease,omitempty"`
	NeutralizePoison bool   `json:"neutralize_poison,omitempty"`
}

type UseDivineSmite struct {
	sealed
	CharacterID           string `json:"character_id"`
	SpellSlotLevel        int    `json:"spell_slot_level"`
	TargetIsUndeadOrFiend bool   `json:"target_is_undead_or_fiend,omitempty"`
}

type UseWildShape struct {
	sealed
	CharacterID string `json:"character_id"`
	BeastForm   string `json:"beast_form"`
	BeastHP     int    `json:"beast_hp"`
	BeastAC     *int   `json:"beast_ac,omitempty"`
}

type EndWildShape struct {
	sealed
	CharacterID  string `json:"character_id"`
	Reason       string `json:"reason"`
	ExcessDamage int    `json:"excess_damage,omitempty"`
}

type UseChannelDivinity struct {
	sealed
	CharacterID string   `json:"character_id"`
	Option      string   `json:"option"`
	Targets     []string `json:"targets,omitempty"`
}

type UseBardicInspiration struct {
	sealed
	CharacterID string `json:"character_id"`
	TargetName  string `json:"target_name"`
	DieSize     string `json:"die_size,omitempty"`
}

type UseActionSurge struct {
	sealed
	CharacterID string `json:"character_id"`
	ActionTaken string `json:"action_taken"`
}

type UseSecondWind struct {
	sealed
	CharacterID string `json:"character_id"`
}

type UseSorceryPoints struct {
	sealed
	CharacterID string `json:"character_id"`
	Points      int    `json:"points"`
	Metamagic   string `json:"metamagic"`
	SpellName   string `json:"spell_name,omitempty"`
	SlotLevel   *int   `json:"slot_level,omitempty"`
}

func (UseRage) Kind() Kind              { return KindUseRage }
func (EndRage) Kind() Kind              { return KindEndRage }
func (UseKi) Kind() Kind                { return KindUseKi }
func (UseLayOnHands) Kind() Kind        { return KindUseLayOnHands }
func (UseDivineSmite) Kind() Kind       { return KindUseDivineSmite }
func (UseWildShape) Kind() Kind         { return KindUseWildShape }
func (EndWildShape) Kind() Kind         { return KindEndWildShape }
func (UseChannelDivinity) Kind() Kind   { return KindUseChannelDivinity }
func (UseBardicInspiration) Kind() Kind { return KindUseBardicInspiration }
func (UseActionSurge) Kind() Kind       { return KindUseActionSurge }
func (UseSecondWind) Kind() Kind        { return KindUseSecondWind }
func (UseSorceryPoints) Kind() Kind     { return KindUseSorceryPoints }

func init() {
	register[UseRage]()
	register[EndRage]()
	register[UseKi]()
	register[UseLayOnHands]()
	register[UseDivineSmite]()
	register[UseWildShape]()
	register[EndWildShape]()
	register[UseChannelDivinity]()
	register[UseBardicInspiration]()
	register[UseActionSurge]()
	register[UseSecondWind]()
	register[UseSorceryPoints]()
}
