package combat

import (
	"sort"
	"strings"
)

// Combatant is one entry in the initiative order
type Combatant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPlayer   bool   `json:"is_player"`
	IsAlly     bool   `json:"is_ally"`
	CurrentHP  int    `json:"current_hp"`
	MaxHP      int    `json:"max_hp"`
	ArmorClass int    `json:"armor_class"`
	Initiative int    `json:"initiative"`
}

// IsAlive returns true if the combatant has more than 0 HP
func (c *Combatant) IsAlive() bool {
	return c.CurrentHP > 0
}

// State tracks an active fight. It exists from CombatStarted to CombatEnded.
type State struct {
	Combatants []Combatant `json:"combatants"`
	TurnIndex  int         `json:"turn_index"`
	Round      int         `json:"round"`

	// SneakAttackUsed holds the ids that have used sneak attack since the
	// turn pointer last moved.
	SneakAttackUsed map[string]bool `json:"sneak_attack_used,omitempty"`
}

// NewState returns an empty fight at round 1
func NewState() *State {
	return &State{
		Round:           1,
		SneakAttackUsed: make(map[string]bool),
	}
}

// AddCombatant inserts c and keeps the roster ordered by initiative,
// highest first. Ties keep arrival order.
func (s *State) AddCombatant(c Combatant) {
	s.Combatants = append(s.Combatants, c)
	sort.SliceStable(s.Combatants, func(i, j int) bool {
		return s.Combatants[i].Initiative > s.Combatants[j].Initiative
	})
}

// Current returns the combatant whose turn it is, or nil for an empty roster
func (s *State) Current() *Combatant {
	if len(s.Combatants) == 0 || s.TurnIndex < 0 || s.TurnIndex >= len(s.Combatants) {
		return nil
	}
	return &s.Combatants[s.TurnIndex]
}

// NextTurn moves the pointer forward, wrapping into a new round. The sneak
// attack set is cleared every time the turn changes.
func (s *State) NextTurn() {
	if len(s.Combatants) == 0 {
		return
	}
	s.TurnIndex++
	if s.TurnIndex >= len(s.Combatants) {
		s.TurnIndex = 0
		s.Round++
	}
	clear(s.SneakAttackUsed)
}

// MarkSneakAttack records that id used sneak attack this turn
func (s *State) MarkSneakAttack(id string) {
	if s.SneakAttackUsed == nil {
		s.SneakAttackUsed = make(map[string]bool)
	}
	s.SneakAttackUsed[id] = true
}

func (s *State) HasUsedSneakAttack(id string) bool {
	return s.SneakAttackUsed[id]
}

// UpdateCombatantHP mirrors a new HP value onto the combatant with id
func (s *State) UpdateCombatantHP(id string, hp int) bool {
	if c := s.Find(id); c != nil {
		c.CurrentHP = hp
		return true
	}
	return false
}

// Find returns the combatant with id, or nil
func (s *State) Find(id string) *Combatant {
	for i := range s.Combatants {
		if s.Combatants[i].ID == id {
			return &s.Combatants[i]
		}
	}
	return nil
}

// FindByName does a case-insensitive lookup
func (s *State) FindByName(name string) *Combatant {
	for i := range s.Combatants {
		if strings.EqualFold(s.Combatants[i].Name, name) {
			return &s.Combatants[i]
		}
	}
	return nil
}

// LivingAllies returns allies other than the player that are still standing
func (s *State) LivingAllies() []Combatant {
	var out []Combatant
	for _, c := range s.Combatants {
		if c.IsAlly && !c.IsPlayer && c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns an independent copy
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	out.Combatants = append([]Combatant(nil), s.Combatants...)
	out.SneakAttackUsed = make(map[string]bool, len(s.SneakAttackUsed))
	for k, v := range s.SneakAttackUsed {
		out.SneakAttackUsed[k] = v
	}
	return &out
}
