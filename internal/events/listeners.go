package events

import (
	"log"
	"sync"

	"github.com/KirkDiggler/chronicler/internal/effects"
)

// NewLoggingListener logs every event it sees
func NewLoggingListener() EventListener {
	return NewListenerFunc("event-logger", PriorityAudit, func(e Event) error {
		switch ev := e.(type) {
		case *EffectAppliedEvent:
			log.Printf("EventBus: world %s applied #%d %s", ev.WorldID, ev.Seq, ev.Effect.Kind())
		case *IntentResolvedEvent:
			log.Printf("EventBus: world %s resolved %s (%d effects)", ev.WorldID, ev.Intent.Kind(), len(ev.Resolution.Effects))
		default:
			log.Printf("EventBus: world %s %s", e.GetWorldID(), e.GetType())
		}
		return nil
	})
}

// Recorder keeps the effects it is sent, per world. It backs read models
// and tests that need to see what was published.
type Recorder struct {
	mu      sync.Mutex
	id      string
	applied map[string][]effects.Effect
}

func NewRecorder(id string) *Recorder {
	return &Recorder{id: id, applied: make(map[string][]effects.Effect)}
}

func (r *Recorder) ID() string    { return r.id }
func (r *Recorder) Priority() int { return PriorityProjection }

func (r *Recorder) HandleEvent(e Event) error {
	applied, ok := e.(*EffectAppliedEvent)
	if !ok {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied[applied.WorldID] = append(r.applied[applied.WorldID], applied.Effect)
	return nil
}

// Effects returns a copy of what was recorded for worldID
func (r *Recorder) Effects(worldID string) []effects.Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]effects.Effect, len(r.applied[worldID]))
	copy(out, r.applied[worldID])
	return out
}
