package character

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

// RageFeature is the feature whose uses gate rage
const RageFeature = "Rage"

type ClassLevel struct {
	Class    rulebook.Class `json:"class"`
	Level    int            `json:"level"`
	Subclass string         `json:"subclass,omitempty"`
}

type Proficiencies struct {
	Skills       []shared.Skill   `json:"skills,omitempty"`
	Expertise    []shared.Skill   `json:"expertise,omitempty"`
	SavingThrows []shared.Ability `json:"saving_throws,omitempty"`
	Armor        []string         `json:"armor,omitempty"`
	Weapons      []string         `json:"weapons,omitempty"`
	Tools        []string         `json:"tools,omitempty"`
}

// Character is the player character a world revolves around
type Character struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Race          string          `json:"race"`
	Background    string          `json:"background,omitempty"`
	Classes       []ClassLevel    `json:"classes"`
	Level         int             `json:"level"`
	Experience    int             `json:"experience"`
	AbilityScores AbilityScores   `json:"ability_scores"`
	HitPoints     HitPoints       `json:"hit_points"`
	HitDice       HitDice         `json:"hit_dice"`
	DeathSaves    DeathSaves      `json:"death_saves"`
	Conditions    conditions.List `json:"conditions,omitempty"`
	Proficiencies Proficiencies   `json:"proficiencies"`
	Features      Features        `json:"features,omitempty"`
	Resources     ClassResources  `json:"class_resources"`
	Spellcasting  *Spellcasting   `json:"spellcasting,omitempty"`
	Inventory     Inventory       `json:"inventory"`
	Equipment     Equipment       `json:"equipment"`
	Speed         int             `json:"speed"`
	BaseAC        int             `json:"base_ac,omitempty"`
}

// PrimaryClass is the first class taken
func (c *Character) PrimaryClass() (rulebook.Class, bool) {
	if len(c.Classes) == 0 {
		return "", false
	}
	return c.Classes[0].Class, true
}

// ClassLevel returns the levels held in class, zero if none
func (c *Character) ClassLevel(class rulebook.Class) int {
	for _, cl := range c.Classes {
		if cl.Class == class {
			return cl.Level
		}
	}
	return 0
}

func (c *Character) ProficiencyBonus() int {
	return rulebook.ProficiencyBonus(c.Level)
}

func (c *Character) Modifier(a shared.Ability) int {
	return c.AbilityScores.Modifier(a)
}

func (c *Character) HasCondition(t conditions.ConditionType) bool {
	return c.Conditions.Has(t)
}

func (c *Character) IsUnconscious() bool {
	return c.Conditions.Has(conditions.Unconscious)
}

// IsIncapacitated reports any condition that stops actions
func (c *Character) IsIncapacitated() bool {
	for _, a := range c.Conditions {
		if a.Type.IsIncapacitating() {
			return true
		}
	}
	return false
}

// MovementBlocker returns the first condition that sets speed to zero
func (c *Character) MovementBlocker() (conditions.ConditionType, bool) {
	for _, a := range c.Conditions {
		if a.Type.BlocksMovement() {
			return a.Type, true
		}
	}
	return "", false
}

func (c *Character) HasSavingThrowProficiency(a shared.Ability) bool {
	for _, p := range c.Proficiencies.SavingThrows {
		if p == a {
			return true
		}
	}
	return false
}

func (c *Character) HasSkillProficiency(s shared.Skill) bool {
	for _, p := range c.Proficiencies.Skills {
		if p == s {
			return true
		}
	}
	return false
}

func (c *Character) HasExpertise(s shared.Skill) bool {
	for _, p := range c.Proficiencies.Expertise {
		if p == s {
			return true
		}
	}
	return false
}

// SkillModifier is ability modifier plus proficiency, doubled with expertise
func (c *Character) SkillModifier(s shared.Skill) int {
	mod := c.Modifier(s.Ability())
	switch {
	case c.HasExpertise(s):
		mod += 2 * c.ProficiencyBonus()
	case c.HasSkillProficiency(s):
		mod += c.ProficiencyBonus()
	}
	return mod
}

func (c *Character) SavingThrowModifier(a shared.Ability) int {
	mod := c.Modifier(a)
	if c.HasSavingThrowProficiency(a) {
		mod += c.ProficiencyBonus()
	}
	return mod
}

func (c *Character) InitiativeModifier() int {
	return c.Modifier(shared.Dexterity)
}

// ArmorClass derives AC from armor, shield and the unarmored defenses
func (c *Character) ArmorClass() int {
	dex := c.Modifier(shared.Dexterity)
	var ac int
	switch {
	case c.Equipment.Armor != nil:
		ac = c.Equipment.Armor.AC(dex)
	case c.ClassLevel(rulebook.Barbarian) > 0:
		ac = 10 + dex + c.Modifier(shared.Constitution)
	case c.ClassLevel(rulebook.Monk) > 0 && c.Equipment.Shield == nil:
		ac = 10 + dex + c.Modifier(shared.Wisdom)
	case c.BaseAC > 0:
		ac = c.BaseAC
	default:
		ac = 10 + dex
	}
	if c.Equipment.Shield != nil {
		ac += 2
	}
	return ac
}

// SpellcastingModifier is zero for characters that do not cast
func (c *Character) SpellcastingModifier() int {
	if c.Spellcasting == nil {
		return 0
	}
	return c.Modifier(c.Spellcasting.Ability)
}

func (c *Character) SpellSaveDC() int {
	return max(8+c.SpellcastingModifier()+c.ProficiencyBonus(), 8)
}

func (c *Character) SpellAttackBonus() int {
	return c.SpellcastingModifier() + c.ProficiencyBonus()
}

// LevelUp moves the primary class to newLevel. HP grows by the hit die
// average plus CON (at least 1) and slot totals follow the class table.
func (c *Character) LevelUp(newLevel int) {
	oldLevel := c.Level
	c.Level = newLevel
	if len(c.Classes) == 0 {
		return
	}
	primary := &c.Classes[0]
	class := primary.Class
	primary.Level = newLevel

	gained := max(class.HitDieAverage()+c.Modifier(shared.Constitution), 1)
	c.HitPoints.Maximum += gained
	c.HitPoints.Current += gained
	if c.HitDice == nil {
		c.HitDice = HitDice{}
	}
	c.HitDice.Add(class.HitDie(), 1)

	if ability, casts := class.SpellcastingAbility(); casts {
		totals := class.SpellSlotsAtLevel(newLevel)
		switch {
		case c.Spellcasting != nil:
			c.Spellcasting.Slots.Resize(totals)
		case hasAny(totals):
			sc := &Spellcasting{Ability: ability}
			sc.Slots.Resize(totals)
			c.Spellcasting = sc
		}
	}

	res := &c.Resources
	switch class {
	case rulebook.Monk:
		res.MaxKiPoints = newLevel
		res.KiPoints = newLevel
	case rulebook.Sorcerer:
		if newLevel >= 2 {
			res.MaxSorceryPoints = newLevel
			res.SorceryPoints = min(res.SorceryPoints+max(newLevel-oldLevel, 0), res.MaxSorceryPoints)
		}
	case rulebook.Paladin:
		res.LayOnHandsMax = 5 * newLevel
		res.LayOnHandsPool = res.LayOnHandsMax
	case rulebook.Barbarian:
		uses := rulebook.RageUses(newLevel)
		if rage := c.Features.Find(RageFeature); rage != nil && rage.Uses != nil {
			rage.Uses.Maximum = uses
			rage.Uses.Current = uses
		}
		res.RageDamageBonus = rulebook.RageDamageBonus(newLevel)
	}
}

func hasAny(totals [MaxSpellLevel]int) bool {
	for _, t := range totals {
		if t > 0 {
			return true
		}
	}
	return false
}

// ShortRest restores short-rest features and pools. Pact magic slots come back too.
func (c *Character) ShortRest() {
	for _, cl := range c.Classes {
		c.Resources.ShortRestRecovery(cl.Class, cl.Level)
	}
	c.Features.Restore(false)
	if c.Spellcasting != nil {
		for _, cl := range c.Classes {
			if cl.Class.HasPactMagic() {
				c.Spellcasting.Slots.RecoverAll()
				break
			}
		}
	}
}

// LongRest restores everything a long rest restores and removes one level of exhaustion
func (c *Character) LongRest() {
	c.HitPoints.Current = c.HitPoints.Maximum
	c.HitPoints.Temporary = 0
	c.HitDice.RecoverHalf()
	if c.Spellcasting != nil {
		c.Spellcasting.Slots.RecoverAll()
	}
	c.Features.Restore(true)
	for _, cl := range c.Classes {
		c.Resources.LongRestRecovery(cl.Class, cl.Level)
	}
	c.DeathSaves.Reset()
	c.Conditions = c.Conditions.ReduceExhaustion()
}

// ClassSummary renders "Fighter 3 / Rogue 1"
func (c *Character) ClassSummary() string {
	parts := make([]string, 0, len(c.Classes))
	for _, cl := range c.Classes {
		parts = append(parts, fmt.Sprintf("%s %d", cl.Class.Name(), cl.Level))
	}
	return strings.Join(parts, " / ")
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Classes = append([]ClassLevel(nil), c.Classes...)
	out.HitDice = c.HitDice.Clone()
	out.Conditions = c.Conditions.Clone()
	out.Proficiencies = Proficiencies{
		Skills:       append([]shared.Skill(nil), c.Proficiencies.Skills...),
		Expertise:    append([]shared.Skill(nil), c.Proficiencies.Expertise...),
		SavingThrows: append([]shared.Ability(nil), c.Proficiencies.SavingThrows...),
		Armor:        append([]string(nil), c.Proficiencies.Armor...),
		Weapons:      append([]string(nil), c.Proficiencies.Weapons...),
		Tools:        append([]string(nil), c.Proficiencies.Tools...),
	}
	out.Features = c.Features.Clone()
	out.Resources = c.Resources.Clone()
	out.Spellcasting = c.Spellcasting.Clone()
	out.Inventory = c.Inventory.Clone()
	out.Equipment = c.Equipment.Clone()
	return &out
}
