package world

import (
	"strings"
)

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
	QuestAbandoned QuestStatus = "abandoned"
)

type Objective struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Optional    bool   `json:"optional,omitempty"`
}

type Quest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      QuestStatus `json:"status"`
	Objectives  []Objective `json:"objectives,omitempty"`
	Rewards     []string    `json:"rewards,omitempty"`
	Giver       string      `json:"giver,omitempty"`
}

func (q *Quest) EntityID() string   { return q.ID }
func (q *Quest) EntityName() string { return q.Name }

// IsComplete is true when there is at least one objective and all are done
func (q *Quest) IsComplete() bool {
	if len(q.Objectives) == 0 {
		return false
	}
	for _, o := range q.Objectives {
		if !o.Completed {
			return false
		}
	}
	return true
}

// FindObjective matches a case-insensitive substring of the description
func (q *Quest) FindObjective(partial string) *Objective {
	needle := NameKey(partial)
	for i := range q.Objectives {
		if strings.Contains(NameKey(q.Objectives[i].Description), needle) {
			return &q.Objectives[i]
		}
	}
	return nil
}

// Complete marks the quest done along with every required objective
func (q *Quest) Complete() {
	q.Status = QuestCompleted
	for i := range q.Objectives {
		if !q.Objectives[i].Optional {
			q.Objectives[i].Completed = true
		}
	}
}

func (q *Quest) Clone() *Quest {
	out := *q
	out.Objectives = append([]Objective(nil), q.Objectives...)
	out.Rewards = append([]string(nil), q.Rewards...)
	return &out
}
