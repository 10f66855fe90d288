package intents

const (
	KindCastSpell        Kind = "CastSpell"
	KindRestoreSpellSlot Kind = "RestoreSpellSlot"
)

// CastSpell casts by name. SpellLevel 0 means the spell's own level.
type CastSpell struct {
	sealed
	CasterID    string   `json:"caster_id"`
	SpellName   string   `json:"spell_name"`
	Targets     []string `json:"targets,omitempty"`
	SpellLevel  int      `json:"spell_level,omitempty"`
	TargetNames []string `json:"target_names,omitempty"`
}

type RestoreSpellSlot struct {
	sealed
	SlotLevel int    `json:"slot_level"`
	Source    string `json:"source"`
}

func (CastSpell) Kind() Kind        { return KindCastSpell }
func (RestoreSpellSlot) Kind() Kind { return KindRestoreSpellSlot }

func init() {
	register[CastSpell]()
	register[RestoreSpellSlot]()
}
