package character

import (
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

// MaxSpellLevel is the highest slot level
const MaxSpellLevel = 9

type SlotInfo struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

func (s SlotInfo) Available() int {
	return max(s.Total-s.Used, 0)
}

// SpellSlots is indexed by slot level minus one
type SpellSlots [MaxSpellLevel]SlotInfo

// Available returns the open slots at level, zero for out of range levels
func (s *SpellSlots) Available(level int) int {
	if level < 1 || level > MaxSpellLevel {
		return 0
	}
	return s[level-1].Available()
}

// Use spends one slot at level
func (s *SpellSlots) Use(level int) bool {
	if s.Available(level) == 0 {
		return false
	}
	s[level-1].Used++
	return true
}

// Restore gives back one spent slot at level
func (s *SpellSlots) Restore(level int) bool {
	if level < 1 || level > MaxSpellLevel || s[level-1].Used == 0 {
		return false
	}
	s[level-1].Used--
	return true
}

func (s *SpellSlots) RecoverAll() {
	for i := range s {
		s[i].Used = 0
	}
}

// Resize sets new totals. Slots gained at a level are refunded from the used
// count; nothing else spent comes back.
func (s *SpellSlots) Resize(totals [MaxSpellLevel]int) {
	for i, total := range totals {
		if gained := total - s[i].Total; gained > 0 {
			s[i].Used = max(s[i].Used-gained, 0)
		}
		s[i].Total = total
		s[i].Used = min(s[i].Used, total)
	}
}

// Spellcasting is present only on characters that cast
type Spellcasting struct {
	Ability        shared.Ability `json:"ability"`
	SpellsKnown    []string       `json:"spells_known,omitempty"`
	SpellsPrepared []string       `json:"spells_prepared,omitempty"`
	CantripsKnown  []string       `json:"cantrips_known,omitempty"`
	Slots          SpellSlots     `json:"slots"`
}

func (s *Spellcasting) Clone() *Spellcasting {
	if s == nil {
		return nil
	}
	out := *s
	out.SpellsKnown = append([]string(nil), s.SpellsKnown...)
	out.SpellsPrepared = append([]string(nil), s.SpellsPrepared...)
	out.CantripsKnown = append([]string(nil), s.CantripsKnown...)
	return &out
}
