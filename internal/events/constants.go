package events

const effectTypePrefix = "effect:"

// Event type constants
const (
	// EventTypeAll subscribes a listener to every event
	EventTypeAll EventType = "*"

	EventTypeIntentResolved EventType = "intent_resolved"
	EventTypeIntentRejected EventType = "intent_rejected"
	EventTypeWorldReplayed  EventType = "world_replayed"
)

// Priority levels for listener order
const (
	PriorityAudit        = 0   // Loggers and recorders see events first
	PriorityProjection   = 100 // Read models derived from effects
	PriorityNotification = 500 // Outbound messages to players
)
