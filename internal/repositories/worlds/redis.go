package worlds

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chronicler/internal/domain/world"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

const (
	// Key patterns
	worldKeyPrefix   = "world:"
	initialKeySuffix = ":initial"
	worldIndexKey    = "worlds"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	// TTL expires idle worlds; zero keeps them forever
	TTL time.Duration
}

type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a Redis-backed world repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewRealTimeProvider()
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: tp,
		ttl:          cfg.TTL,
	}
}

func worldKey(id string) string {
	return worldKeyPrefix + id
}

func initialKey(id string) string {
	return worldKeyPrefix + id + initialKeySuffix
}

func (r *redisRepository) Create(ctx context.Context, w *world.GameWorld) error {
	if err := validateWorld(w); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	snapshot, err := json.Marshal(Snapshot{World: w, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return apperrors.Wrapf(err, "failed to serialize world %s", w.ID)
	}
	initial, err := json.Marshal(w)
	if err != nil {
		return apperrors.Wrapf(err, "failed to serialize world %s", w.ID)
	}

	created, err := r.client.SetNX(ctx, worldKey(w.ID), string(snapshot), r.ttl).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to create world %s", w.ID)
	}
	if !created {
		return apperrors.AlreadyExistsf("world with ID '%s' already exists", w.ID).
			WithMeta("world_id", w.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, initialKey(w.ID), string(initial), r.ttl)
	pipe.SAdd(ctx, worldIndexKey, w.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to index world %s", w.ID)
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*world.GameWorld, error) {
	snapshot, err := r.getSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return snapshot.World, nil
}

func (r *redisRepository) getSnapshot(ctx context.Context, id string) (*Snapshot, error) {
	if id == "" {
		return nil, apperrors.MissingParam("world ID")
	}

	data, err := r.client.Get(ctx, worldKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("world with ID '%s' not found", id).
				WithMeta("world_id", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get world %s", id)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to deserialize world "+id)
	}
	if snapshot.World == nil {
		return nil, apperrors.Internalf("world %s has an empty snapshot", id)
	}

	return &snapshot, nil
}

func (r *redisRepository) GetInitial(ctx context.Context, id string) (*world.GameWorld, error) {
	if id == "" {
		return nil, apperrors.MissingParam("world ID")
	}

	data, err := r.client.Get(ctx, initialKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("initial snapshot for world '%s' not found", id).
				WithMeta("world_id", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get initial world %s", id)
	}

	var w world.GameWorld
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to deserialize world "+id)
	}
	return &w, nil
}

func (r *redisRepository) Update(ctx context.Context, w *world.GameWorld) error {
	if err := validateWorld(w); err != nil {
		return err
	}

	existing, err := r.getSnapshot(ctx, w.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(Snapshot{
		World:     w,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: r.timeProvider.Now(),
	})
	if err != nil {
		return apperrors.Wrapf(err, "failed to serialize world %s", w.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, worldKey(w.ID), string(data), r.ttl)
	if r.ttl > 0 {
		pipe.Expire(ctx, initialKey(w.ID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to update world %s", w.ID)
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.MissingParam("world ID")
	}

	pipe := r.client.TxPipeline()
	removed := pipe.Del(ctx, worldKey(id))
	pipe.Del(ctx, initialKey(id))
	pipe.SRem(ctx, worldIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to delete world %s", id)
	}

	if removed.Val() == 0 {
		return apperrors.NotFoundf("world with ID '%s' not found", id).
			WithMeta("world_id", id)
	}
	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]*Snapshot, error) {
	ids, err := r.client.SMembers(ctx, worldIndexKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list worlds")
	}
	if len(ids) == 0 {
		return []*Snapshot{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = worldKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get worlds")
	}

	result := make([]*Snapshot, 0, len(values))
	for i, val := range values {
		// Expired worlds linger in the index until the next delete
		if val == nil {
			log.Printf("Worlds: index entry %s has no snapshot, skipping", ids[i])
			continue
		}

		data, ok := val.(string)
		if !ok {
			continue
		}

		var snapshot Snapshot
		if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
			log.Printf("Worlds: failed to deserialize world %s: %v", ids[i], err)
			continue
		}
		if snapshot.World == nil {
			continue
		}
		result = append(result, &snapshot)
	}

	sortSnapshots(result)
	return result, nil
}
