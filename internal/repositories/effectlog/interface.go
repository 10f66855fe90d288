// Package effectlog records every applied effect per world, in order, so a
// world can be rebuilt from its initial snapshot.
package effectlog

//go:generate mockgen -destination=mock/mock_log.go -package=mockeffectlog -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/chronicler/internal/effects"
)

// Log is an append-only effect journal keyed by world
type Log interface {
	// Append records effects after everything already logged for worldID and
	// returns the stored entries
	Append(ctx context.Context, worldID string, list []effects.Effect) ([]Entry, error)

	// List returns every entry for worldID in append order
	List(ctx context.Context, worldID string) ([]Entry, error)

	// Delete drops the whole journal of worldID
	Delete(ctx context.Context, worldID string) error
}

// Effects strips entries down to their effects, keeping order
func Effects(entries []Entry) []effects.Effect {
	out := make([]effects.Effect, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Effect)
	}
	return out
}

var (
	_ Log = (*InMemoryLog)(nil)
	_ Log = (*RedisLog)(nil)
	_ Log = (*SQLiteLog)(nil)
)
