package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/events"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	hpType := events.EffectTypeFor(effects.KindHPChanged)

	// Subscribe in random order
	bus.Subscribe(hpType, events.NewListenerFunc("low", 300, record("low")))
	bus.Subscribe(hpType, events.NewListenerFunc("high", 100, record("high")))
	bus.Subscribe(events.EventTypeAll, events.NewListenerFunc("audit", events.PriorityAudit, record("audit")))
	bus.Subscribe(hpType, events.NewListenerFunc("medium", 200, record("medium")))

	err := bus.Emit(events.NewEffectAppliedEvent("world-1", 1, effects.HPChanged{TargetID: "player", Amount: -3}))
	require.NoError(t, err)

	// Lower priority number runs earlier; wildcard listeners interleave
	assert.Equal(t, []string{"audit", "high", "medium", "low"}, executionOrder)
}

func TestEventBus_OnlyMatchingType(t *testing.T) {
	bus := events.NewBus()
	recorder := events.NewRecorder("recorder")
	var rejected int

	bus.Subscribe(events.EffectTypeFor(effects.KindTimeAdvanced), recorder)
	bus.Subscribe(events.EventTypeIntentRejected, events.NewListenerFunc("rejections", 0, func(events.Event) error {
		rejected++
		return nil
	}))

	require.NoError(t, bus.Emit(events.NewEffectAppliedEvent("world-1", 1, effects.HPChanged{TargetID: "player"})))
	require.NoError(t, bus.Emit(events.NewEffectAppliedEvent("world-1", 2, effects.TimeAdvanced{Minutes: 10})))
	require.NoError(t, bus.Emit(events.NewIntentResolvedEvent("world-1", intents.AdvanceTime{Minutes: 10}, effects.Resolution{
		Effects:   []effects.Effect{effects.TimeAdvanced{Minutes: 10}},
		Narrative: "10 minutes pass.",
	})))
	require.NoError(t, bus.Emit(events.NewIntentResolvedEvent("world-1", intents.AdvanceTime{Minutes: -1}, effects.Resolution{
		Narrative: "Time only moves forward.",
	})))

	assert.Equal(t, []effects.Effect{effects.TimeAdvanced{Minutes: 10}}, recorder.Effects("world-1"))
	assert.Empty(t, recorder.Effects("world-2"))
	assert.Equal(t, 1, rejected)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	var firstExecuted, secondExecuted bool

	first := events.NewListenerFunc("first", 100, func(e events.Event) error {
		firstExecuted = true
		e.Cancel()
		return nil
	})
	second := events.NewListenerFunc("second", 200, func(events.Event) error {
		secondExecuted = true
		return nil
	})

	bus.Subscribe(events.EventTypeWorldReplayed, first)
	bus.Subscribe(events.EventTypeWorldReplayed, second)

	event := &events.WorldReplayedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeWorldReplayed, WorldID: "world-1"},
		EffectCount: 4,
	}

	require.NoError(t, bus.Emit(event))

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeAll, events.NewListenerFunc("broken", 0, func(events.Event) error {
		return errors.New("boom")
	}))

	err := bus.Emit(events.NewEffectAppliedEvent("world-1", 1, effects.TimeAdvanced{Minutes: 1}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed: boom")
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	var calls int
	count := func(events.Event) error {
		calls++
		return nil
	}

	bus.Subscribe(events.EventTypeAll, events.NewListenerFunc("a", 0, count))
	bus.Subscribe(events.EventTypeAll, events.NewListenerFunc("b", 1, count))
	bus.Subscribe(events.EventTypeAll, events.NewLoggingListener())

	event := events.NewEffectAppliedEvent("world-1", 1, effects.TimeAdvanced{Minutes: 1})
	require.NoError(t, bus.Emit(event))
	assert.Equal(t, 2, calls)

	bus.Unsubscribe(events.EventTypeAll, "a")
	require.NoError(t, bus.Emit(event))
	assert.Equal(t, 3, calls)

	bus.Clear()
	require.NoError(t, bus.Emit(event))
	assert.Equal(t, 3, calls)
}
