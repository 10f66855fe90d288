package world

import (
	"strings"
)

type LocationType string

const (
	LocationWilderness LocationType = "wilderness"
	LocationTown       LocationType = "town"
	LocationCity       LocationType = "city"
	LocationDungeon    LocationType = "dungeon"
	LocationBuilding   LocationType = "building"
	LocationRoom       LocationType = "room"
	LocationRoad       LocationType = "road"
	LocationCave       LocationType = "cave"
	LocationOther      LocationType = "other"
)

// ParseLocationType maps free text onto a known type, falling back to other
func ParseLocationType(s string) LocationType {
	switch t := LocationType(strings.ToLower(strings.TrimSpace(s))); t {
	case LocationWilderness, LocationTown, LocationCity, LocationDungeon,
		LocationBuilding, LocationRoom, LocationRoad, LocationCave:
		return t
	}
	return LocationOther
}

// Connection is a one-way route out of a location
type Connection struct {
	DestinationID     string `json:"destination_id"`
	DestinationName   string `json:"destination_name"`
	Direction         string `json:"direction,omitempty"`
	TravelTimeMinutes int    `json:"travel_time_minutes"`
}

type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        LocationType `json:"type"`
	Description string       `json:"description,omitempty"`
	ParentID    string       `json:"parent_id,omitempty"`
	Connections []Connection `json:"connections,omitempty"`
	Items       []string     `json:"items,omitempty"`
	NPCsPresent []string     `json:"npcs_present,omitempty"`
}

func (l *Location) EntityID() string   { return l.ID }
func (l *Location) EntityName() string { return l.Name }

// Connect adds or replaces the route to dest
func (l *Location) Connect(c Connection) {
	for i := range l.Connections {
		if l.Connections[i].DestinationID == c.DestinationID {
			l.Connections[i] = c
			return
		}
	}
	l.Connections = append(l.Connections, c)
}

// ConnectionTo returns the route to the named destination
func (l *Location) ConnectionTo(name string) (Connection, bool) {
	for _, c := range l.Connections {
		if SameName(c.DestinationName, name) {
			return c, true
		}
	}
	return Connection{}, false
}

func (l *Location) Clone() *Location {
	out := *l
	out.Connections = append([]Connection(nil), l.Connections...)
	out.Items = append([]string(nil), l.Items...)
	out.NPCsPresent = append([]string(nil), l.NPCsPresent...)
	return &out
}
