package intents

const (
	KindCreateQuest       Kind = "CreateQuest"
	KindAddQuestObjective Kind = "AddQuestObjective"
	KindCompleteObjective Kind = "CompleteObjective"
	KindCompleteQuest     Kind = "CompleteQuest"
	KindFailQuest         Kind = "FailQuest"
	KindUpdateQuest       Kind = "UpdateQuest"
)

type ObjectiveInit struct {
	Description string `json:"description"`
	Optional    bool   `json:"optional,omitempty"`
}

type CreateQuest struct {
	sealed
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Giver       string          `json:"giver,omitempty"`
	Objectives  []ObjectiveInit `json:"objectives,omitempty"`
	Rewards     []string        `json:"rewards,omitempty"`
}

type AddQuestObjective struct {
	sealed
	QuestName string `json:"quest_name"`
	Objective string `json:"objective"`
	Optional  bool   `json:"optional,omitempty"`
}

// CompleteObjective matches the objective by partial description
type CompleteObjective struct {
	sealed
	QuestName            string `json:"quest_name"`
	ObjectiveDescription string `json:"objective_description"`
}

type CompleteQuest struct {
	sealed
	QuestName      string `json:"quest_name"`
	CompletionNote string `json:"completion_note,omitempty"`
}

type FailQuest struct {
	sealed
	QuestName     string `json:"quest_name"`
	FailureReason string `json:"failure_reason"`
}

type UpdateQuest struct {
	sealed
	QuestName      string   `json:"quest_name"`
	NewDescription string   `json:"new_description,omitempty"`
	AddRewards     []string `json:"add_rewards,omitempty"`
}

func (CreateQuest) Kind() Kind       { return KindCreateQuest }
func (AddQuestObjective) Kind() Kind { return KindAddQuestObjective }
func (CompleteObjective) Kind() Kind { return KindCompleteObjective }
func (CompleteQuest) Kind() Kind     { return KindCompleteQuest }
func (FailQuest) Kind() Kind         { return KindFailQuest }
func (UpdateQuest) Kind() Kind       { return KindUpdateQuest }

func init() {
	register[CreateQuest]()
	register[AddQuestObjective]()
	register[CompleteObjective]()
	register[CompleteQuest]()
	register[FailQuest]()
	register[UpdateQuest]()
}
