package intents

import (
	"github.com/KirkDiggler/chronicler/internal/domain/world"
)

const (
	KindChangeLocation   Kind = "ChangeLocation"
	KindCreateNPC        Kind = "CreateNPC"
	KindUpdateNPC        Kind = "UpdateNPC"
	KindMoveNPC          Kind = "MoveNPC"
	KindRemoveNPC        Kind = "RemoveNPC"
	KindCreateLocation   Kind = "CreateLocation"
	KindConnectLocations Kind = "ConnectLocations"
	KindUpdateLocation   Kind = "UpdateLocation"
	KindAssertState      Kind = "AssertState"
	KindShareKnowledge   Kind = "ShareKnowledge"
	KindScheduleEvent    Kind = "ScheduleEvent"
	KindCancelEvent      Kind = "CancelEvent"
)

type ChangeLocation struct {
	sealed
	NewLocation  string `json:"new_location"`
	LocationType string `json:"location_type,omitempty"`
	Description  string `json:"description,omitempty"`
}

type CreateNPC struct {
	sealed
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Personality      string   `json:"personality,omitempty"`
	Occupation       string   `json:"occupation,omitempty"`
	Disposition      string   `json:"disposition"`
	Location         string   `json:"location,omitempty"`
	KnownInformation []string `json:"known_information,omitempty"`
}

type UpdateNPC struct {
	sealed
	NPCName        string   `json:"npc_name"`
	Disposition    string   `json:"disposition,omitempty"`
	AddInformation []string `json:"add_information,omitempty"`
	NewDescription string   `json:"new_description,omitempty"`
	NewPersonality string   `json:"new_personality,omitempty"`
}

type MoveNPC struct {
	sealed
	NPCName     string `json:"npc_name"`
	Destination string `json:"destination"`
	Reason      string `json:"reason,omitempty"`
}

type RemoveNPC struct {
	sealed
	NPCName   string `json:"npc_name"`
	Reason    string `json:"reason"`
	Permanent bool   `json:"permanent,omitempty"`
}

type CreateLocation struct {
	sealed
	Name           string   `json:"name"`
	LocationType   string   `json:"location_type"`
	Description    string   `json:"description,omitempty"`
	ParentLocation string   `json:"parent_location,omitempty"`
	Items          []string `json:"items,omitempty"`
	NPCsPresent    []string `json:"npcs_present,omitempty"`
}

type ConnectLocations struct {
	sealed
	FromLocation      string `json:"from_location"`
	ToLocation        string `json:"to_location"`
	Direction         string `json:"direction,omitempty"`
	TravelTimeMinutes *int   `json:"travel_time_minutes,omitempty"`
	Bidirectional     bool   `json:"bidirectional,omitempty"`
}

type UpdateLocation struct {
	sealed
	LocationName   string   `json:"location_name"`
	NewDescription string   `json:"new_description,omitempty"`
	AddItems       []string `json:"add_items,omitempty"`
	RemoveItems    []string `json:"remove_items,omitempty"`
	AddNPCs        []string `json:"add_npcs,omitempty"`
	RemoveNPCs     []string `json:"remove_npcs,omitempty"`
}

// AssertState declares a new value for one fact about an entity
type AssertState struct {
	sealed
	EntityName   string          `json:"entity_name"`
	StateType    world.StateType `json:"state_type"`
	NewValue     string          `json:"new_value"`
	Reason       string          `json:"reason"`
	TargetEntity string          `json:"target_entity,omitempty"`
}

type ShareKnowledge struct {
	sealed
	KnowingEntity string `json:"knowing_entity"`
	Content       string `json:"content"`
	Source        string `json:"source"`
	Verification  string `json:"verification"`
	Context       string `json:"context,omitempty"`
}

// ScheduleEvent sets something to happen later. Timing is relative
// (Minutes/Hours), absolute (Day/Month/Year with optional Hour) or daily.
type ScheduleEvent struct {
	sealed
	Description      string   `json:"description"`
	Minutes          *int     `json:"minutes,omitempty"`
	Hours            *int     `json:"hours,omitempty"`
	Day              *int     `json:"day,omitempty"`
	Month            *int     `json:"month,omitempty"`
	Year             *int     `json:"year,omitempty"`
	Hour             *int     `json:"hour,omitempty"`
	DailyHour        *int     `json:"daily_hour,omitempty"`
	DailyMinute      *int     `json:"daily_minute,omitempty"`
	Location         string   `json:"location,omitempty"`
	InvolvedEntities []string `json:"involved_entities,omitempty"`
	Visibility       string   `json:"visibility"`
	Repeating        bool     `json:"repeating,omitempty"`
}

type CancelEvent struct {
	sealed
	EventDescription string `json:"event_description"`
	Reason           string `json:"reason"`
}

func (ChangeLocation) Kind() Kind   { return KindChangeLocation }
func (CreateNPC) Kind() Kind        { return KindCreateNPC }
func (UpdateNPC) Kind() Kind        { return KindUpdateNPC }
func (MoveNPC) Kind() Kind          { return KindMoveNPC }
func (RemoveNPC) Kind() Kind        { return KindRemoveNPC }
func (CreateLocation) Kind() Kind   { return KindCreateLocation }
func (ConnectLocations) Kind() Kind { return KindConnectLocations }
func (UpdateLocation) Kind() Kind   { return KindUpdateLocation }
func (AssertState) Kind() Kind      { return KindAssertState }
func (ShareKnowledge) Kind() Kind   { return KindShareKnowledge }
func (ScheduleEvent) Kind() Kind    { return KindScheduleEvent }
func (CancelEvent) Kind() Kind      { return KindCancelEvent }

func init() {
	register[ChangeLocation]()
	register[CreateNPC]()
	register[UpdateNPC]()
	register[MoveNPC]()
	register[RemoveNPC]()
	register[CreateLocation]()
	register[ConnectLocations]()
	register[UpdateLocation]()
	register[AssertState]()
	register[ShareKnowledge]()
	register[ScheduleEvent]()
	register[CancelEvent]()
}
