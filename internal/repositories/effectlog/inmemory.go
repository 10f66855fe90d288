package effectlog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/uuid"
)

// Config carries the collaborators every backend shares
type Config struct {
	IDGenerator  uuid.Generator
	TimeProvider TimeProvider
}

func (c *Config) withDefaults() Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.IDGenerator == nil {
		out.IDGenerator = uuid.NewULIDGenerator()
	}
	if out.TimeProvider == nil {
		out.TimeProvider = realTimeProvider{}
	}
	return out
}

// newEntries stamps ids and times; seq is left to the backend
func (c Config) newEntries(worldID string, list []effects.Effect) []Entry {
	now := c.TimeProvider.Now()
	entries := make([]Entry, len(list))
	for i, e := range list {
		entries[i] = Entry{
			ID:         c.IDGenerator.New(),
			WorldID:    worldID,
			Effect:     e,
			RecordedAt: fromMillis(toMillis(now)),
		}
	}
	return entries
}

// InMemoryLog keeps journals in process memory
type InMemoryLog struct {
	mu      sync.RWMutex
	cfg     Config
	entries map[string][]Entry
}

func NewInMemoryLog(cfg *Config) *InMemoryLog {
	return &InMemoryLog{
		cfg:     cfg.withDefaults(),
		entries: make(map[string][]Entry),
	}
}

func (l *InMemoryLog) Append(ctx context.Context, worldID string, list []effects.Effect) ([]Entry, error) {
	if err := validateAppend(worldID, list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []Entry{}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.cfg.newEntries(worldID, list)
	base := int64(len(l.entries[worldID]))
	for i := range entries {
		entries[i].Seq = base + int64(i) + 1
	}
	l.entries[worldID] = append(l.entries[worldID], entries...)

	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (l *InMemoryLog) List(ctx context.Context, worldID string) ([]Entry, error) {
	if worldID == "" {
		return nil, apperrors.MissingParam("world ID")
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries[worldID]))
	copy(out, l.entries[worldID])
	return out, nil
}

func (l *InMemoryLog) Delete(ctx context.Context, worldID string) error {
	if worldID == "" {
		return apperrors.MissingParam("world ID")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, worldID)
	return nil
}
