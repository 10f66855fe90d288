package world

import (
	"strings"
)

// StateType is the kind of fact an assertion changes about an entity
type StateType string

const (
	StateDisposition  StateType = "disposition"
	StateLocation     StateType = "location"
	StateStatus       StateType = "status"
	StateKnowledge    StateType = "knowledge"
	StateRelationship StateType = "relationship"
)

// ParseStateType is case-insensitive
func ParseStateType(s string) (StateType, bool) {
	switch t := StateType(strings.ToLower(strings.TrimSpace(s))); t {
	case StateDisposition, StateLocation, StateStatus, StateKnowledge, StateRelationship:
		return t, true
	}
	return "", false
}
