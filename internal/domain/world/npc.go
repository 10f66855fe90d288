package world

import (
	"strings"
)

// Disposition is an NPC's attitude toward the player
type Disposition string

const (
	Hostile    Disposition = "hostile"
	Unfriendly Disposition = "unfriendly"
	Neutral    Disposition = "neutral"
	Friendly   Disposition = "friendly"
	Helpful    Disposition = "helpful"
)

// ParseDisposition is case-insensitive
func ParseDisposition(s string) (Disposition, bool) {
	switch d := Disposition(strings.ToLower(strings.TrimSpace(s))); d {
	case Hostile, Unfriendly, Neutral, Friendly, Helpful:
		return d, true
	}
	return "", false
}

type NPC struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Personality      string      `json:"personality,omitempty"`
	Occupation       string      `json:"occupation,omitempty"`
	Disposition      Disposition `json:"disposition"`
	Status           string      `json:"status,omitempty"`
	LocationID       string      `json:"location_id,omitempty"`
	KnownInformation []string    `json:"known_information,omitempty"`
}

func (n *NPC) EntityID() string   { return n.ID }
func (n *NPC) EntityName() string { return n.Name }

// Learn adds a piece of information unless the NPC already knows it
func (n *NPC) Learn(info string) {
	for _, known := range n.KnownInformation {
		if known == info {
			return
		}
	}
	n.KnownInformation = append(n.KnownInformation, info)
}

func (n *NPC) Clone() *NPC {
	out := *n
	out.KnownInformation = append([]string(nil), n.KnownInformation...)
	return &out
}
