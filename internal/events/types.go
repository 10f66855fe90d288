package events

import (
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

// EventType represents the type of session event
type EventType string

// Event is the base interface for everything published on the bus
type Event interface {
	GetType() EventType
	GetWorldID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	WorldID   string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetWorldID() string { return e.WorldID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// EffectTypeFor is the event type published when an effect of kind is applied
func EffectTypeFor(kind effects.Kind) EventType {
	return EventType(effectTypePrefix + string(kind))
}

// EffectAppliedEvent is published once per applied effect, in log order
type EffectAppliedEvent struct {
	BaseEvent
	Seq    int64
	Effect effects.Effect
}

func NewEffectAppliedEvent(worldID string, seq int64, e effects.Effect) *EffectAppliedEvent {
	return &EffectAppliedEvent{
		BaseEvent: BaseEvent{Type: EffectTypeFor(e.Kind()), WorldID: worldID},
		Seq:       seq,
		Effect:    e,
	}
}

// IntentResolvedEvent is published after every resolution, rejected or not
type IntentResolvedEvent struct {
	BaseEvent
	Intent     intents.Intent
	Resolution effects.Resolution
}

func NewIntentResolvedEvent(worldID string, in intents.Intent, res effects.Resolution) *IntentResolvedEvent {
	eventType := EventTypeIntentResolved
	if res.Rejected() {
		eventType = EventTypeIntentRejected
	}
	return &IntentResolvedEvent{
		BaseEvent:  BaseEvent{Type: eventType, WorldID: worldID},
		Intent:     in,
		Resolution: res,
	}
}

// WorldReplayedEvent is published after a world is rebuilt from its log
type WorldReplayedEvent struct {
	BaseEvent
	EffectCount int
}
