package rules

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func (e *engine) resolveShortRest(w *world.GameWorld) effects.Resolution {
	if w.InCombat() {
		return effects.Reject("Cannot take a short rest while in combat!")
	}
	return effects.NewBuilder("The party takes a short rest, spending 1 hour resting.").
		Add(
			effects.TimeAdvanced{Minutes: 60},
			effects.RestCompleted{RestType: effects.RestShort},
		).
		Build()
}

func (e *engine) resolveLongRest(w *world.GameWorld) effects.Resolution {
	if w.InCombat() {
		return effects.Reject("Cannot take a long rest while in combat!")
	}
	return effects.NewBuilder("The party takes a long rest, spending 8 hours resting.").
		Add(
			effects.TimeAdvanced{Minutes: 8 * 60},
			effects.RestCompleted{RestType: effects.RestLong},
		).
		Build()
}

func (e *engine) resolveAdvanceTime(i intents.AdvanceTime) effects.Resolution {
	if i.Minutes <= 0 {
		return effects.Reject("Invalid time: %d minutes. Time only moves forward.", i.Minutes)
	}
	hours, mins := i.Minutes/60, i.Minutes%60

	var passed string
	switch {
	case hours > 0 && mins > 0:
		passed = fmt.Sprintf("%d hours and %d minutes", hours, mins)
	case hours > 0:
		passed = fmt.Sprintf("%d hours", hours)
	default:
		passed = fmt.Sprintf("%d minutes", mins)
	}
	return effects.NewBuilder("%s pass.", passed).
		Add(effects.TimeAdvanced{Minutes: i.Minutes}).
		Build()
}

func (e *engine) resolveGainExperience(w *world.GameWorld, i intents.GainExperience) effects.Resolution {
	c, rejected, ok := e.actor(w, "")
	if !ok {
		return rejected
	}
	if i.Amount <= 0 {
		return effects.Reject("Invalid experience amount: %d.", i.Amount)
	}

	total := c.Experience + i.Amount
	b := effects.NewBuilder("Gained %d experience points (Total: %d)", i.Amount, total).
		Add(effects.ExperienceGained{Amount: i.Amount, NewTotal: total})
	if level := rulebook.LevelForExperience(total); level > c.Level {
		b.Line("%s reaches level %d!", c.Name, level)
		b.Add(effects.LevelUp{NewLevel: level})
	}
	return b.Build()
}

func (e *engine) resolveUseFeature(w *world.GameWorld, i intents.UseFeature) effects.Resolution {
	c, rejected, ok := e.actor(w, i.CharacterID)
	if !ok {
		return rejected
	}
	f := c.Features.Find(i.FeatureName)
	if f == nil {
		return effects.Reject("%s does not have the feature %s", c.Name, i.FeatureName)
	}
	if f.Uses == nil {
		return effects.Reject("%s uses %s", c.Name, f.Name)
	}
	if f.Uses.Current <= 0 {
		return effects.Reject("%s has no uses of %s remaining", c.Name, f.Name)
	}

	remaining := f.Uses.Current - 1
	return effects.NewBuilder("%s uses %s (%d uses remaining)", c.Name, f.Name, remaining).
		Add(effects.FeatureUsed{FeatureName: f.Name, UsesRemaining: remaining}).
		Build()
}

func (e *engine) resolveModifyAbilityScore(i intents.ModifyAbilityScore) effects.Resolution {
	if !i.Ability.Valid() {
		return effects.Reject("Invalid ability: '%s'.", i.Ability)
	}
	if i.Modifier == 0 {
		return effects.Reject("Invalid modifier: 0 changes nothing.")
	}

	duration := " permanently"
	if i.Duration != "" {
		duration = " for " + i.Duration
	}
	return effects.NewBuilder("%s modified by %+d%s from %s", i.Ability.Name(), i.Modifier, duration, i.Source).
		Add(effects.AbilityScoreModified{Ability: i.Ability, Modifier: i.Modifier, Source: i.Source}).
		Build()
}

func related(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf(" (related: %s)", strings.Join(names, ", "))
}

func (e *engine) resolveRememberFact(i intents.RememberFact) effects.Resolution {
	if strings.TrimSpace(i.Fact) == "" {
		return effects.Reject("Invalid fact: nothing to remember.")
	}
	return effects.NewBuilder("Noted: %s (%s) - %s%s", i.SubjectName, i.SubjectType, i.Fact, related(i.RelatedEntities)).
		Add(effects.FactRemembered{
			SubjectName:     i.SubjectName,
			SubjectType:     i.SubjectType,
			Fact:            i.Fact,
			Category:        i.Category,
			RelatedEntities: append([]string(nil), i.RelatedEntities...),
			Importance:      i.Importance,
		}).
		Build()
}

func severity(s string) string {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "minor", "moderate", "major", "critical":
		return v
	}
	return "moderate"
}

func (e *engine) resolveRegisterConsequence(i intents.RegisterConsequence) effects.Resolution {
	level := severity(i.Severity)
	b := effects.NewBuilder("Consequence registered: If %s, then %s (%s severity, importance %.1f)",
		i.TriggerDescription, i.ConsequenceDescription, level, i.Importance)
	if i.ExpiresInTurns != nil {
		b.Append(" (expires in %d turns)", *i.ExpiresInTurns)
	}
	return b.Add(effects.ConsequenceRegistered{
		ConsequenceID:          e.uuidGenerator.New(),
		TriggerDescription:     i.TriggerDescription,
		ConsequenceDescription: i.ConsequenceDescription,
		Severity:               level,
	}).Build()
}
