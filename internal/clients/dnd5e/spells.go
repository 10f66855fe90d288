package dnd5e

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// GetSpell retrieves a spell by key
func (c *client) GetSpell(key string) (*rulebook.Spell, error) {
	if key == "" {
		return nil, apperrors.MissingParam("GetSpell.key")
	}

	apiSpell, err := c.client.GetSpell(key)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get spell %s", key)
	}
	if apiSpell == nil {
		return nil, apperrors.NotFoundf("spell %s not found", key)
	}

	return convertSpell(apiSpell), nil
}

func convertSpell(apiSpell *entities.Spell) *rulebook.Spell {
	spell := &rulebook.Spell{
		Name:          apiSpell.Name,
		Level:         apiSpell.SpellLevel,
		CastingTime:   strings.ToLower(apiSpell.CastingTime),
		Range:         strings.ToLower(apiSpell.Range),
		Duration:      strings.ToLower(apiSpell.Duration),
		Concentration: apiSpell.Concentration,
		Ritual:        apiSpell.Ritual,
		Scaling:       rulebook.DamageScaling{Kind: rulebook.ScalingNone},
		Classes:       convertClasses(apiSpell.SpellClasses),
	}

	if apiSpell.SpellSchool != nil {
		spell.School = rulebook.SpellSchool(strings.ToLower(apiSpell.SpellSchool.Name))
	}

	if apiSpell.SpellDamage != nil {
		convertSpellDamage(spell, apiSpell.SpellDamage)
	}

	if apiSpell.DC != nil {
		if apiSpell.DC.DCType != nil {
			if ability, err := shared.ParseAbility(apiSpell.DC.DCType.Name); err == nil {
				spell.SaveType = ability
			}
		}
		spell.SaveEffect = strings.ToLower(apiSpell.DC.DCSuccess)
		if spell.SaveEffect == "none" {
			spell.SaveEffect = "no damage"
		}
	}

	if apiSpell.AreaOfEffect != nil {
		spell.Area = rulebook.AreaOfEffect{
			Shape: strings.ToLower(apiSpell.AreaOfEffect.Type),
			Size:  apiSpell.AreaOfEffect.Size,
		}
	}

	// The API does not say which spells need an attack roll. Damage with
	// no save is treated as a ranged spell attack unless it is self-range.
	if spell.DamageDice != "" && spell.SaveType == "" && !strings.HasPrefix(spell.Range, "self") {
		if spell.Range == "touch" {
			spell.AttackType = rulebook.SpellAttackMelee
		} else {
			spell.AttackType = rulebook.SpellAttackRanged
		}
	}

	spell.Description = describe(spell)
	return spell
}

// convertSpellDamage takes the base damage at the spell's own level and
// derives per-slot scaling from the next level's entry when both are plain
// dice of the same size.
func convertSpellDamage(spell *rulebook.Spell, apiDamage *entities.SpellDamage) {
	if apiDamage.SpellDamageType != nil {
		if dt, err := shared.ParseDamageType(apiDamage.SpellDamageType.Name); err == nil {
			spell.DamageType = dt
		}
	}
	if apiDamage.SpellDamageAtSlotLevel == nil {
		return
	}

	atSlot := apiDamage.SpellDamageAtSlotLevel
	byLevel := map[int]string{
		1: atSlot.FirstLevel,
		2: atSlot.SecondLevel,
		3: atSlot.ThirdLevel,
		4: atSlot.FourthLevel,
		5: atSlot.FifthLevel,
		6: atSlot.SixthLevel,
		7: atSlot.SeventhLevel,
		8: atSlot.EighthLevel,
		9: atSlot.NinthLevel,
	}

	base := normalizeNotation(byLevel[spell.Level])
	if _, err := dice.Parse(base); err != nil {
		return
	}
	spell.DamageDice = base

	next := normalizeNotation(byLevel[spell.Level+1])
	if extra, ok := diceDelta(base, next); ok {
		spell.Scaling = rulebook.DamageScaling{Kind: rulebook.ScalingPerSlot, ExtraDice: extra}
	}
}

// normalizeNotation strips the "+ MOD" placeholders the API uses
func normalizeNotation(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "+MOD", "")
	return s
}

func diceDelta(base, next string) (string, bool) {
	if next == "" {
		return "", false
	}
	a, err := dice.Parse(base)
	if err != nil || len(a.Groups) != 1 {
		return "", false
	}
	b, err := dice.Parse(next)
	if err != nil || len(b.Groups) != 1 {
		return "", false
	}
	if a.Groups[0].Sides != b.Groups[0].Sides || b.Groups[0].Count <= a.Groups[0].Count {
		return "", false
	}
	return fmt.Sprintf("%dd%d", b.Groups[0].Count-a.Groups[0].Count, a.Groups[0].Sides), true
}

func convertClasses(refs []*entities.ReferenceItem) []rulebook.Class {
	var classes []rulebook.Class
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if class, err := rulebook.ParseClass(ref.Key); err == nil {
			classes = append(classes, class)
		}
	}
	return classes
}

func describe(spell *rulebook.Spell) string {
	var b strings.Builder
	if spell.Level == 0 {
		fmt.Fprintf(&b, "A %s cantrip.", spell.School)
	} else {
		fmt.Fprintf(&b, "A level %d %s spell.", spell.Level, spell.School)
	}
	if spell.DamageDice != "" {
		fmt.Fprintf(&b, " Deals %s %s damage.", spell.DamageDice, spell.DamageType)
	}
	return b.String()
}
