package worlds

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/chronicler/internal/domain/world"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

type memoryEntry struct {
	current  *world.GameWorld
	initial  *world.GameWorld
	snapshot Snapshot
}

// InMemoryRepository keeps worlds in a map. Useful for tests and for running
// without redis.
type InMemoryRepository struct {
	mu           sync.RWMutex
	worlds       map[string]*memoryEntry
	timeProvider TimeProvider
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() Repository {
	return NewInMemoryRepositoryWithClock(NewRealTimeProvider())
}

// NewInMemoryRepositoryWithClock lets tests pin the timestamps
func NewInMemoryRepositoryWithClock(tp TimeProvider) Repository {
	if tp == nil {
		tp = NewRealTimeProvider()
	}
	return &InMemoryRepository{
		worlds:       make(map[string]*memoryEntry),
		timeProvider: tp,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, w *world.GameWorld) error {
	if err := validateWorld(w); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.worlds[w.ID]; exists {
		return apperrors.AlreadyExistsf("world with ID '%s' already exists", w.ID).
			WithMeta("world_id", w.ID)
	}

	now := r.timeProvider.Now()
	r.worlds[w.ID] = &memoryEntry{
		current:  w.Clone(),
		initial:  w.Clone(),
		snapshot: Snapshot{CreatedAt: now, UpdatedAt: now},
	}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*world.GameWorld, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.current, nil
}

func (r *InMemoryRepository) GetInitial(ctx context.Context, id string) (*world.GameWorld, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.initial, nil
}

// lookup returns copies so callers never share state with the store
func (r *InMemoryRepository) lookup(id string) (*memoryEntry, error) {
	if id == "" {
		return nil, apperrors.MissingParam("world ID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.worlds[id]
	if !exists {
		return nil, apperrors.NotFoundf("world with ID '%s' not found", id).
			WithMeta("world_id", id)
	}
	return &memoryEntry{
		current:  entry.current.Clone(),
		initial:  entry.initial.Clone(),
		snapshot: entry.snapshot,
	}, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, w *world.GameWorld) error {
	if err := validateWorld(w); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.worlds[w.ID]
	if !exists {
		return apperrors.NotFoundf("world with ID '%s' not found", w.ID).
			WithMeta("world_id", w.ID)
	}

	entry.current = w.Clone()
	entry.snapshot.UpdatedAt = r.timeProvider.Now()
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.MissingParam("world ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.worlds[id]; !exists {
		return apperrors.NotFoundf("world with ID '%s' not found", id).
			WithMeta("world_id", id)
	}
	delete(r.worlds, id)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Snapshot, 0, len(r.worlds))
	for _, entry := range r.worlds {
		result = append(result, &Snapshot{
			World:     entry.current.Clone(),
			CreatedAt: entry.snapshot.CreatedAt,
			UpdatedAt: entry.snapshot.UpdatedAt,
		})
	}
	sortSnapshots(result)
	return result, nil
}

func validateWorld(w *world.GameWorld) error {
	if w == nil {
		return apperrors.InvalidArgument("world cannot be nil")
	}
	if w.ID == "" {
		return apperrors.InvalidArgument("world ID is required")
	}
	if w.Player == nil {
		return apperrors.InvalidArgumentf("world '%s' has no player", w.ID).
			WithMeta("world_id", w.ID)
	}
	return nil
}

func sortSnapshots(list []*Snapshot) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].World.ID < list[j].World.ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
