package rules

import (
	"strings"

	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

// activeQuest finds a quest that can still change
func activeQuest(w *world.GameWorld, name string) (*world.Quest, effects.Resolution, bool) {
	q, ok := w.Quests.Find(name)
	if !ok {
		return nil, effects.Reject("Quest '%s' not found", name), false
	}
	if q.Status != world.QuestActive {
		return nil, effects.Reject("Quest '%s' is already %s", q.Name, q.Status), false
	}
	return q, effects.Resolution{}, true
}

func (e *engine) resolveCreateQuest(w *world.GameWorld, i intents.CreateQuest) effects.Resolution {
	if strings.TrimSpace(i.Name) == "" {
		return effects.Reject("Invalid quest: a name is required.")
	}
	if existing, dup := w.Quests.Find(i.Name); dup {
		return effects.Reject("DUPLICATE QUEST ERROR: A quest named '%s' already exists (status: %s). Use 'update_quest' or 'add_quest_objective' to change it.", existing.Name, existing.Status)
	}

	objectives := make([]effects.QuestObjective, 0, len(i.Objectives))
	for _, o := range i.Objectives {
		objectives = append(objectives, effects.QuestObjective{Description: o.Description, Optional: o.Optional})
	}

	b := effects.NewBuilder("Quest Started: %q", i.Name)
	if i.Giver != "" {
		b.Append(" (from %s)", i.Giver)
	}
	return b.Add(effects.QuestCreated{
		ID:          e.uuidGenerator.New(),
		Name:        i.Name,
		Description: i.Description,
		Giver:       i.Giver,
		Objectives:  objectives,
		Rewards:     append([]string(nil), i.Rewards...),
	}).Build()
}

func (e *engine) resolveAddQuestObjective(w *world.GameWorld, i intents.AddQuestObjective) effects.Resolution {
	q, rejected, ok := activeQuest(w, i.QuestName)
	if !ok {
		return rejected
	}
	if strings.TrimSpace(i.Objective) == "" {
		return effects.Reject("Invalid objective: a description is required.")
	}

	b := effects.NewBuilder("New objective for %q: %s", q.Name, i.Objective)
	if i.Optional {
		b.Append(" (optional)")
	}
	return b.Add(effects.QuestObjectiveAdded{QuestName: q.Name, Objective: i.Objective, Optional: i.Optional}).Build()
}

func (e *engine) resolveCompleteObjective(w *world.GameWorld, i intents.CompleteObjective) effects.Resolution {
	q, rejected, ok := activeQuest(w, i.QuestName)
	if !ok {
		return rejected
	}
	o := q.FindObjective(i.ObjectiveDescription)
	if o == nil {
		return effects.Reject("Quest %q has no objective matching '%s'", q.Name, i.ObjectiveDescription)
	}
	if o.Completed {
		return effects.Reject("Objective already completed for %q: %s", q.Name, o.Description)
	}
	return effects.NewBuilder("Objective completed for %q: %s", q.Name, o.Description).
		Add(effects.QuestObjectiveCompleted{QuestName: q.Name, ObjectiveDescription: o.Description}).
		Build()
}

func (e *engine) resolveCompleteQuest(w *world.GameWorld, i intents.CompleteQuest) effects.Resolution {
	q, rejected, ok := activeQuest(w, i.QuestName)
	if !ok {
		return rejected
	}
	b := effects.NewBuilder("Quest Completed: %q", q.Name)
	if i.CompletionNote != "" {
		b.Append(" - %s", i.CompletionNote)
	}
	return b.Add(effects.QuestCompleted{QuestName: q.Name, CompletionNote: i.CompletionNote}).Build()
}

func (e *engine) resolveFailQuest(w *world.GameWorld, i intents.FailQuest) effects.Resolution {
	q, rejected, ok := activeQuest(w, i.QuestName)
	if !ok {
		return rejected
	}
	return effects.NewBuilder("Quest Failed: %q - %s", q.Name, i.FailureReason).
		Add(effects.QuestFailed{QuestName: q.Name, FailureReason: i.FailureReason}).
		Build()
}

func (e *engine) resolveUpdateQuest(w *world.GameWorld, i intents.UpdateQuest) effects.Resolution {
	q, ok := w.Quests.Find(i.QuestName)
	if !ok {
		return effects.Reject("Quest '%s' not found", i.QuestName)
	}
	if i.NewDescription == "" && len(i.AddRewards) == 0 {
		return effects.Reject("Quest %q unchanged: give a new description or rewards to add.", q.Name)
	}

	parts := []string{"Quest \"" + q.Name + "\" updated"}
	if i.NewDescription != "" {
		parts = append(parts, "description changed")
	}
	if len(i.AddRewards) > 0 {
		parts = append(parts, "rewards added: "+strings.Join(i.AddRewards, ", "))
	}
	return effects.NewBuilder("%s", strings.Join(parts, "; ")).
		Add(effects.QuestUpdated{
			QuestName:      q.Name,
			NewDescription: i.NewDescription,
			AddRewards:     append([]string(nil), i.AddRewards...),
		}).
		Build()
}
