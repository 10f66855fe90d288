package effects

import (
	"github.com/KirkDiggler/chronicler/internal/domain/world"
)

const (
	KindTimeAdvanced            Kind = "TimeAdvanced"
	KindLocationChanged         Kind = "LocationChanged"
	KindFactRemembered          Kind = "FactRemembered"
	KindConsequenceRegistered   Kind = "ConsequenceRegistered"
	KindConsequenceTriggered    Kind = "ConsequenceTriggered"
	KindNPCCreated              Kind = "NPCCreated"
	KindNPCUpdated              Kind = "NPCUpdated"
	KindNPCMoved                Kind = "NPCMoved"
	KindNPCRemoved              Kind = "NPCRemoved"
	KindLocationCreated         Kind = "LocationCreated"
	KindLocationsConnected      Kind = "LocationsConnected"
	KindLocationUpdated         Kind = "LocationUpdated"
	KindStateAsserted           Kind = "StateAsserted"
	KindKnowledgeShared         Kind = "KnowledgeShared"
	KindEventScheduled          Kind = "EventScheduled"
	KindEventCancelled          Kind = "EventCancelled"
	KindEventTriggered          Kind = "EventTriggered"
	KindQuestCreated            Kind = "QuestCreated"
	KindQuestObjectiveAdded     Kind = "QuestObjectiveAdded"
	KindQuestObjectiveCompleted Kind = "QuestObjectiveCompleted"
	KindQuestCompleted          Kind = "QuestCompleted"
	KindQuestFailed             Kind = "QuestFailed"
	KindQuestUpdated            Kind = "QuestUpdated"
)

type TimeAdvanced struct {
	sealed
	Minutes int `json:"minutes"`
}

type LocationChanged struct {
	sealed
	PreviousLocation string `json:"previous_location"`
	NewLocation      string `json:"new_location"`
}

type FactRemembered struct {
	sealed
	SubjectName     string   `json:"subject_name"`
	SubjectType     string   `json:"subject_type"`
	Fact            string   `json:"fact"`
	Category        string   `json:"category"`
	RelatedEntities []string `json:"related_entities,omitempty"`
	Importance      float64  `json:"importance"`
}

type ConsequenceRegistered struct {
	sealed
	ConsequenceID          string `json:"consequence_id"`
	TriggerDescription     string `json:"trigger_description"`
	ConsequenceDescription string `json:"consequence_description"`
	Severity               string `json:"severity"`
}

type ConsequenceTriggered struct {
	sealed
	ConsequenceID          string `json:"consequence_id"`
	ConsequenceDescription string `json:"consequence_description"`
}

// NPCCreated carries the id chosen at resolve time so replays rebuild the
// same world.
type NPCCreated struct {
	sealed
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	Personality      string            `json:"personality,omitempty"`
	Occupation       string            `json:"occupation,omitempty"`
	Disposition      world.Disposition `json:"disposition"`
	Location         string            `json:"location,omitempty"`
	KnownInformation []string          `json:"known_information,omitempty"`
}

// NPCUpdated is a notification; it does not change the world
type NPCUpdated struct {
	sealed
	NPCName string `json:"npc_name"`
	Changes string `json:"changes"`
}

type NPCMoved struct {
	sealed
	NPCName      string `json:"npc_name"`
	FromLocation string `json:"from_location,omitempty"`
	ToLocation   string `json:"to_location"`
}

type NPCRemoved struct {
	sealed
	NPCName string `json:"npc_name"`
	Reason  string `json:"reason"`
}

type LocationCreated struct {
	sealed
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	LocationType   world.LocationType `json:"location_type"`
	Description    string             `json:"description,omitempty"`
	ParentLocation string             `json:"parent_location,omitempty"`
	Items          []string           `json:"items,omitempty"`
	NPCsPresent    []string           `json:"npcs_present,omitempty"`
}

// LocationsConnected is one direction only
type LocationsConnected struct {
	sealed
	From              string `json:"from"`
	To                string `json:"to"`
	Direction         string `json:"direction,omitempty"`
	TravelTimeMinutes int    `json:"travel_time_minutes,omitempty"`
}

// LocationUpdated is a notification; it does not change the world
type LocationUpdated struct {
	sealed
	LocationName string `json:"location_name"`
	Changes      string `json:"changes"`
}

type StateAsserted struct {
	sealed
	EntityName   string          `json:"entity_name"`
	StateType    world.StateType `json:"state_type"`
	OldValue     string          `json:"old_value,omitempty"`
	NewValue     string          `json:"new_value"`
	Reason       string          `json:"reason"`
	TargetEntity string          `json:"target_entity,omitempty"`
}

type KnowledgeShared struct {
	sealed
	KnowingEntity string `json:"knowing_entity"`
	Content       string `json:"content"`
	Source        string `json:"source"`
	Verification  string `json:"verification"`
	Context       string `json:"context,omitempty"`
}

type EventScheduled struct {
	sealed
	Description        string `json:"description"`
	TriggerDescription string `json:"trigger_description"`
	Location           string `json:"location,omitempty"`
	Visibility         string `json:"visibility"`
}

type EventCancelled struct {
	sealed
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type EventTriggered struct {
	sealed
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

type QuestObjective struct {
	Description string `json:"description"`
	Optional    bool   `json:"optional,omitempty"`
}

type QuestCreated struct {
	sealed
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Giver       string           `json:"giver,omitempty"`
	Objectives  []QuestObjective `json:"objectives,omitempty"`
	Rewards     []string         `json:"rewards,omitempty"`
}

type QuestObjectiveAdded struct {
	sealed
	QuestName string `json:"quest_name"`
	Objective string `json:"objective"`
	Optional  bool   `json:"optional,omitempty"`
}

type QuestObjectiveCompleted struct {
	sealed
	QuestName            string `json:"quest_name"`
	ObjectiveDescription string `json:"objective_description"`
}

type QuestCompleted struct {
	sealed
	QuestName      string `json:"quest_name"`
	CompletionNote string `json:"completion_note,omitempty"`
}

type QuestFailed struct {
	sealed
	QuestName     string `json:"quest_name"`
	FailureReason string `json:"failure_reason"`
}

type QuestUpdated struct {
	sealed
	QuestName      string   `json:"quest_name"`
	NewDescription string   `json:"new_description,omitempty"`
	AddRewards     []string `json:"add_rewards,omitempty"`
}

func (TimeAdvanced) Kind() Kind            { return KindTimeAdvanced }
func (LocationChanged) Kind() Kind         { return KindLocationChanged }
func (FactRemembered) Kind() Kind          { return KindFactRemembered }
func (ConsequenceRegistered) Kind() Kind   { return KindConsequenceRegistered }
func (ConsequenceTriggered) Kind() Kind    { return KindConsequenceTriggered }
func (NPCCreated) Kind() Kind              { return KindNPCCreated }
func (NPCUpdated) Kind() Kind              { return KindNPCUpdated }
func (NPCMoved) Kind() Kind                { return KindNPCMoved }
func (NPCRemoved) Kind() Kind              { return KindNPCRemoved }
func (LocationCreated) Kind() Kind         { return KindLocationCreated }
func (LocationsConnected) Kind() Kind      { return KindLocationsConnected }
func (LocationUpdated) Kind() Kind         { return KindLocationUpdated }
func (StateAsserted) Kind() Kind           { return KindStateAsserted }
func (KnowledgeShared) Kind() Kind         { return KindKnowledgeShared }
func (EventScheduled) Kind() Kind          { return KindEventScheduled }
func (EventCancelled) Kind() Kind          { return KindEventCancelled }
func (EventTriggered) Kind() Kind          { return KindEventTriggered }
func (QuestCreated) Kind() Kind            { return KindQuestCreated }
func (QuestObjectiveAdded) Kind() Kind     { return KindQuestObjectiveAdded }
func (QuestObjectiveCompleted) Kind() Kind { return KindQuestObjectiveCompleted }
func (QuestCompleted) Kind() Kind          { return KindQuestCompleted }
func (QuestFailed) Kind() Kind             { return KindQuestFailed }
func (QuestUpdated) Kind() Kind            { return KindQuestUpdated }

func init() {
	register[TimeAdvanced]()
	register[LocationChanged]()
	register[FactRemembered]()
	register[ConsequenceRegistered]()
	register[ConsequenceTriggered]()
	register[NPCCreated]()
	register[NPCUpdated]()
	register[NPCMoved]()
	register[NPCRemoved]()
	register[LocationCreated]()
	register[LocationsConnected]()
	register[LocationUpdated]()
	register[StateAsserted]()
	register[KnowledgeShared]()
	register[EventScheduled]()
	register[EventCancelled]()
	register[EventTriggered]()
	register[QuestCreated]()
	register[QuestObjectiveAdded]()
	register[QuestObjectiveCompleted]()
	register[QuestCompleted]()
	register[QuestFailed]()
	register[QuestUpdated]()
}
