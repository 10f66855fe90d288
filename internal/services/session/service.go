// Package session hosts the rules kernel: it loads a world, resolves an
// intent, applies the effects, journals them and saves the world, one intent
// at a time per world.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=mocksession -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/events"
	"github.com/KirkDiggler/chronicler/internal/intents"
	"github.com/KirkDiggler/chronicler/internal/repositories/effectlog"
	"github.com/KirkDiggler/chronicler/internal/repositories/worlds"
	"github.com/KirkDiggler/chronicler/internal/rules"
	"github.com/KirkDiggler/chronicler/internal/uuid"
)

const defaultBatchConcurrency = 4

// Service defines the session service interface
type Service interface {
	// CreateWorld stores a new world around a player character
	CreateWorld(ctx context.Context, input *CreateWorldInput) (*world.GameWorld, error)

	// GetWorld returns the current state of a world
	GetWorld(ctx context.Context, worldID string) (*world.GameWorld, error)

	// ListWorlds returns every stored world
	ListWorlds(ctx context.Context) ([]*worlds.Snapshot, error)

	// DeleteWorld removes a world and its effect log
	DeleteWorld(ctx context.Context, worldID string) error

	// Resolve runs one intent against a stored world. A rejected intent is
	// not an error; it comes back with an empty effect list.
	Resolve(ctx context.Context, worldID string, intent intents.Intent) (*Result, error)

	// ResolveBatch resolves requests for different worlds concurrently.
	// Requests for the same world run in the order given.
	ResolveBatch(ctx context.Context, requests []Request) ([]*Result, error)

	// Replay rebuilds a world from its initial snapshot and its effect log
	Replay(ctx context.Context, worldID string) (*world.GameWorld, error)

	// Restore replays a world and saves the result as its current state
	Restore(ctx context.Context, worldID string) (*world.GameWorld, error)

	// History returns the effect log of a world
	History(ctx context.Context, worldID string) ([]effectlog.Entry, error)
}

// CreateWorldInput contains data for creating a world
type CreateWorldInput struct {
	Name   string
	Player *character.Character // Required
}

// Request is one intent for one world
type Request struct {
	WorldID string
	Intent  intents.Intent
}

// Result is what resolving a request produced
type Result struct {
	WorldID    string
	Resolution effects.Resolution
	// Entries are the journal entries written for the effects, empty when rejected
	Entries []effectlog.Entry
	// World is the state after the effects were applied
	World *world.GameWorld
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Engine           rules.Engine      // Required
	Worlds           worlds.Repository // Required
	EffectLog        effectlog.Log     // Required
	Publisher        events.Publisher  // Optional
	UUIDGenerator    uuid.Generator    // Optional, will use default if nil
	BatchConcurrency int               // Optional, defaults to 4
}

type service struct {
	engine           rules.Engine
	worlds           worlds.Repository
	effectLog        effectlog.Log
	publisher        events.Publisher
	uuidGenerator    uuid.Generator
	batchConcurrency int

	mu    sync.Mutex
	locks map[string]*worldLock
}

// worldLock is dropped from the map once nobody holds or waits on it
type worldLock struct {
	sync.Mutex
	refs int
}

// NewService creates a new session service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Engine == nil {
		panic("rules engine is required")
	}
	if cfg.Worlds == nil {
		panic("world repository is required")
	}
	if cfg.EffectLog == nil {
		panic("effect log is required")
	}

	svc := &service{
		engine:           cfg.Engine,
		worlds:           cfg.Worlds,
		effectLog:        cfg.EffectLog,
		publisher:        cfg.Publisher,
		uuidGenerator:    cfg.UUIDGenerator,
		batchConcurrency: cfg.BatchConcurrency,
		locks:            make(map[string]*worldLock),
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.batchConcurrency <= 0 {
		svc.batchConcurrency = defaultBatchConcurrency
	}

	return svc
}

// lockWorld serializes everything that reads and writes one world
func (s *service) lockWorld(worldID string) func() {
	s.mu.Lock()
	l, ok := s.locks[worldID]
	if !ok {
		l = &worldLock{}
		s.locks[worldID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, worldID)
		}
		s.mu.Unlock()
	}
}

func (s *service) CreateWorld(ctx context.Context, input *CreateWorldInput) (*world.GameWorld, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.InvalidArgument("world name is required")
	}
	if input.Player == nil {
		return nil, apperrors.InvalidArgument("player character is required")
	}
	if strings.TrimSpace(input.Player.Name) == "" {
		return nil, apperrors.InvalidArgument("player name is required")
	}

	w := world.New(strings.TrimSpace(input.Name), input.Player)
	w.ID = s.uuidGenerator.New()

	if err := s.worlds.Create(ctx, w); err != nil {
		return nil, apperrors.Wrap(err, "failed to create world").
			WithMeta("world_id", w.ID).
			WithMeta("world_name", w.Name)
	}

	log.Printf("Session: created world %s (%s) for %s", w.ID, w.Name, w.Player.Name)
	return w, nil
}

func (s *service) GetWorld(ctx context.Context, worldID string) (*world.GameWorld, error) {
	if strings.TrimSpace(worldID) == "" {
		return nil, apperrors.InvalidArgument("world ID is required")
	}

	w, err := s.worlds.Get(ctx, worldID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get world '%s'", worldID).
			WithMeta("world_id", worldID)
	}
	return w, nil
}

func (s *service) ListWorlds(ctx context.Context) ([]*worlds.Snapshot, error) {
	list, err := s.worlds.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list worlds")
	}
	return list, nil
}

func (s *service) DeleteWorld(ctx context.Context, worldID string) error {
	if strings.TrimSpace(worldID) == "" {
		return apperrors.InvalidArgument("world ID is required")
	}

	unlock := s.lockWorld(worldID)
	defer unlock()

	if err := s.worlds.Delete(ctx, worldID); err != nil {
		return apperrors.Wrapf(err, "failed to delete world '%s'", worldID).
			WithMeta("world_id", worldID)
	}
	if err := s.effectLog.Delete(ctx, worldID); err != nil {
		return apperrors.Wrapf(err, "failed to delete effect log of world '%s'", worldID).
			WithMeta("world_id", worldID)
	}

	log.Printf("Session: deleted world %s", worldID)
	return nil
}

func (s *service) Resolve(ctx context.Context, worldID string, intent intents.Intent) (*Result, error) {
	if strings.TrimSpace(worldID) == "" {
		return nil, apperrors.InvalidArgument("world ID is required")
	}
	if intent == nil {
		return nil, apperrors.InvalidArgument("intent is required")
	}

	unlock := s.lockWorld(worldID)
	defer unlock()

	return s.resolveLocked(ctx, worldID, intent)
}

func (s *service) resolveLocked(ctx context.Context, worldID string, intent intents.Intent) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w, err := s.worlds.Get(ctx, worldID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to load world '%s'", worldID).
			WithMeta("world_id", worldID)
	}

	res := s.engine.Resolve(w, intent)
	result := &Result{WorldID: worldID, Resolution: res, World: w}

	if res.Rejected() {
		log.Printf("Session: %s rejected in world %s: %s", intent.Kind(), worldID, res.Narrative)
		s.publish(events.NewIntentResolvedEvent(worldID, intent, res))
		return result, nil
	}

	// Journal before snapshot: Restore catches a stale snapshot up from the log
	entries, err := s.effectLog.Append(ctx, worldID, res.Effects)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to journal %s", intent.Kind()).
			WithMeta("world_id", worldID)
	}
	result.Entries = entries

	s.engine.Apply(w, res.Effects)

	if err := s.worlds.Update(ctx, w); err != nil {
		return nil, apperrors.Wrapf(err, "failed to save world '%s'", worldID).
			WithMeta("world_id", worldID)
	}

	s.publish(events.NewIntentResolvedEvent(worldID, intent, res))
	for _, entry := range entries {
		s.publish(events.NewEffectAppliedEvent(worldID, entry.Seq, entry.Effect))
	}

	return result, nil
}

func (s *service) ResolveBatch(ctx context.Context, requests []Request) ([]*Result, error) {
	results := make([]*Result, len(requests))

	// Group by world, keeping request order inside each group
	var order []string
	groups := make(map[string][]int)
	for i, req := range requests {
		if strings.TrimSpace(req.WorldID) == "" {
			return nil, apperrors.InvalidArgumentf("request %d has no world ID", i)
		}
		if req.Intent == nil {
			return nil, apperrors.InvalidArgumentf("request %d has no intent", i)
		}
		if _, ok := groups[req.WorldID]; !ok {
			order = append(order, req.WorldID)
		}
		groups[req.WorldID] = append(groups[req.WorldID], i)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for _, worldID := range order {
		worldID := worldID
		indexes := groups[worldID]
		g.Go(func() error {
			unlock := s.lockWorld(worldID)
			defer unlock()

			for _, i := range indexes {
				res, err := s.resolveLocked(gctx, worldID, requests[i].Intent)
				if err != nil {
					return apperrors.Wrapf(err, "request %d", i)
				}
				results[i] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) Replay(ctx context.Context, worldID string) (*world.GameWorld, error) {
	if strings.TrimSpace(worldID) == "" {
		return nil, apperrors.InvalidArgument("world ID is required")
	}

	unlock := s.lockWorld(worldID)
	defer unlock()

	return s.replayLocked(ctx, worldID)
}

func (s *service) replayLocked(ctx context.Context, worldID string) (*world.GameWorld, error) {
	w, err := s.worlds.GetInitial(ctx, worldID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to load initial snapshot of world '%s'", worldID).
			WithMeta("world_id", worldID)
	}

	entries, err := s.effectLog.List(ctx, worldID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read effect log of world '%s'", worldID).
			WithMeta("world_id", worldID)
	}

	s.engine.Apply(w, effectlog.Effects(entries))

	log.Printf("Session: replayed %d effects for world %s", len(entries), worldID)
	s.publish(&events.WorldReplayedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeWorldReplayed, WorldID: worldID},
		EffectCount: len(entries),
	})
	return w, nil
}

func (s *service) Restore(ctx context.Context, worldID string) (*world.GameWorld, error) {
	if strings.TrimSpace(worldID) == "" {
		return nil, apperrors.InvalidArgument("world ID is required")
	}

	unlock := s.lockWorld(worldID)
	defer unlock()

	w, err := s.replayLocked(ctx, worldID)
	if err != nil {
		return nil, err
	}
	if err := s.worlds.Update(ctx, w); err != nil {
		return nil, apperrors.Wrapf(err, "failed to save restored world '%s'", worldID).
			WithMeta("world_id", worldID)
	}
	return w, nil
}

func (s *service) History(ctx context.Context, worldID string) ([]effectlog.Entry, error) {
	if strings.TrimSpace(worldID) == "" {
		return nil, apperrors.InvalidArgument("world ID is required")
	}

	entries, err := s.effectLog.List(ctx, worldID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read effect log of world '%s'", worldID).
			WithMeta("world_id", worldID)
	}
	return entries, nil
}

// publish never fails a request; listeners only observe
func (s *service) publish(event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Emit(event); err != nil {
		log.Printf("Session: publishing %s for world %s failed: %v", event.GetType(), event.GetWorldID(), err)
	}
}
