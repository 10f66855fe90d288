package worlds

//go:generate mockgen -destination=mock/mock_repository.go -package=mockworlds -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/chronicler/internal/domain/world"
)

// Snapshot is a stored world with its bookkeeping timestamps
type Snapshot struct {
	World     *world.GameWorld `json:"world"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Repository stores GameWorld snapshots. Every world keeps the snapshot it was
// created with so its effect log can be replayed from the start.
type Repository interface {
	// Create stores a new world and records it as the initial snapshot
	Create(ctx context.Context, w *world.GameWorld) error

	// Get returns the current snapshot of a world
	Get(ctx context.Context, id string) (*world.GameWorld, error)

	// GetInitial returns the world as it was when created
	GetInitial(ctx context.Context, id string) (*world.GameWorld, error)

	// Update replaces the current snapshot
	Update(ctx context.Context, w *world.GameWorld) error

	// Delete removes both snapshots
	Delete(ctx context.Context, id string) error

	// List returns every stored world, oldest first
	List(ctx context.Context) ([]*Snapshot, error)
}
