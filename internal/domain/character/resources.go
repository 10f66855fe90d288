package character

import (
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
)

// RageRounds is how long a rage lasts
const RageRounds = 10

// ClassResources tracks the per-class pools that gate class features
type ClassResources struct {
	RageActive           bool   `json:"rage_active"`
	RageRoundsRemaining  *int   `json:"rage_rounds_remaining,omitempty"`
	RageDamageBonus      int    `json:"rage_damage_bonus"`
	KiPoints             int    `json:"ki_points"`
	MaxKiPoints          int    `json:"max_ki_points"`
	WildShapeForm        string `json:"wild_shape_form,omitempty"`
	WildShapeHP          *int   `json:"wild_shape_hp,omitempty"`
	WildShapeUses        int    `json:"wild_shape_uses"`
	BardicInspiration    int    `json:"bardic_inspiration_uses"`
	MaxBardicInspiration int    `json:"max_bardic_inspiration"`
	ChannelDivinityUsed  bool   `json:"channel_divinity_used"`
	LayOnHandsPool       int    `json:"lay_on_hands_pool"`
	LayOnHandsMax        int    `json:"lay_on_hands_max"`
	SorceryPoints        int    `json:"sorcery_points"`
	MaxSorceryPoints     int    `json:"max_sorcery_points"`
	ActionSurgeUsed      bool   `json:"action_surge_used"`
	SecondWindUsed       bool   `json:"second_wind_used"`
	ArcaneRecoveryUsed   bool   `json:"arcane_recovery_used"`
}

// Initialize sets pool sizes for one class at a level. chaMod sizes bardic inspiration.
func (r *ClassResources) Initialize(class rulebook.Class, level, chaMod int) {
	switch class {
	case rulebook.Barbarian:
		r.RageActive = false
		r.RageRoundsRemaining = nil
		r.RageDamageBonus = rulebook.RageDamageBonus(level)
	case rulebook.Bard:
		r.MaxBardicInspiration = max(chaMod, 1)
		r.BardicInspiration = r.MaxBardicInspiration
	case rulebook.Monk:
		if level >= 2 {
			r.MaxKiPoints = level
			r.KiPoints = level
		}
	case rulebook.Cleric:
		r.ChannelDivinityUsed = false
	case rulebook.Druid:
		if level >= 2 {
			r.WildShapeUses = 2
		}
	case rulebook.Paladin:
		r.LayOnHandsMax = 5 * level
		r.LayOnHandsPool = r.LayOnHandsMax
		r.ChannelDivinityUsed = false
	case rulebook.Sorcerer:
		if level >= 2 {
			r.MaxSorceryPoints = level
			r.SorceryPoints = level
		}
	case rulebook.Fighter:
		r.ActionSurgeUsed = false
		r.SecondWindUsed = false
	case rulebook.Wizard:
		r.ArcaneRecoveryUsed = false
	}
}

// ShortRestRecovery refills what a short rest gives back for one class
func (r *ClassResources) ShortRestRecovery(class rulebook.Class, level int) {
	switch class {
	case rulebook.Bard:
		if level >= 5 {
			r.BardicInspiration = r.MaxBardicInspiration
		}
	case rulebook.Fighter:
		r.ActionSurgeUsed = false
		r.SecondWindUsed = false
	case rulebook.Cleric, rulebook.Paladin:
		r.ChannelDivinityUsed = false
	case rulebook.Monk:
		r.KiPoints = r.MaxKiPoints
	case rulebook.Druid:
		if level >= 2 {
			r.WildShapeUses = 2
		}
	}
}

// LongRestRecovery does everything a short rest does plus the long-rest pools
func (r *ClassResources) LongRestRecovery(class rulebook.Class, level int) {
	r.ShortRestRecovery(class, level)
	switch class {
	case rulebook.Barbarian:
		r.RageActive = false
		r.RageRoundsRemaining = nil
	case rulebook.Bard:
		r.BardicInspiration = r.MaxBardicInspiration
	case rulebook.Paladin:
		r.LayOnHandsPool = r.LayOnHandsMax
	case rulebook.Sorcerer:
		r.SorceryPoints = r.MaxSorceryPoints
	case rulebook.Wizard:
		r.ArcaneRecoveryUsed = false
	}
}

// StartRage turns rage on for the standard duration
func (r *ClassResources) StartRage(damageBonus int) {
	rounds := RageRounds
	r.RageActive = true
	r.RageDamageBonus = damageBonus
	r.RageRoundsRemaining = &rounds
}

func (r *ClassResources) EndRage() {
	r.RageActive = false
	r.RageRoundsRemaining = nil
}

// TickRage counts down an active rage and ends it when time runs out
func (r *ClassResources) TickRage() {
	if !r.RageActive || r.RageRoundsRemaining == nil {
		return
	}
	remaining := *r.RageRoundsRemaining - 1
	if remaining <= 0 {
		r.EndRage()
		return
	}
	r.RageRoundsRemaining = &remaining
}

func (r ClassResources) Clone() ClassResources {
	out := r
	if r.RageRoundsRemaining != nil {
		v := *r.RageRoundsRemaining
		out.RageRoundsRemaining = &v
	}
	if r.WildShapeHP != nil {
		v := *r.WildShapeHP
		out.WildShapeHP = &v
	}
	return out
}
