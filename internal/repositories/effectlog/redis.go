package effectlog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

const logKeyPrefix = "effectlog:"

// RedisLogConfig holds configuration for the Redis journal
type RedisLogConfig struct {
	Config
	Client redis.UniversalClient
	// TTL should match the world snapshot TTL; zero keeps journals forever
	TTL time.Duration
}

// RedisLog stores each world's journal as a redis list
type RedisLog struct {
	client redis.UniversalClient
	cfg    Config
	ttl    time.Duration
}

func NewRedisLog(cfg *RedisLogConfig) *RedisLog {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &RedisLog{
		client: cfg.Client,
		cfg:    cfg.Config.withDefaults(),
		ttl:    cfg.TTL,
	}
}

func logKey(worldID string) string {
	return logKeyPrefix + worldID
}

func (l *RedisLog) Append(ctx context.Context, worldID string, list []effects.Effect) ([]Entry, error) {
	if err := validateAppend(worldID, list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []Entry{}, nil
	}

	entries := l.cfg.newEntries(worldID, list)
	values := make([]interface{}, len(entries))
	for i, e := range entries {
		data, err := encodeEntry(e)
		if err != nil {
			return nil, err
		}
		values[i] = string(data)
	}

	key := logKey(worldID)
	pipe := l.client.TxPipeline()
	push := pipe.RPush(ctx, key, values...)
	if l.ttl > 0 {
		pipe.Expire(ctx, key, l.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, apperrors.Wrapf(err, "failed to append effects for world %s", worldID)
	}

	// RPUSH reports the new length, so the batch ends there
	base := push.Val() - int64(len(entries))
	for i := range entries {
		entries[i].Seq = base + int64(i) + 1
	}
	return entries, nil
}

func (l *RedisLog) List(ctx context.Context, worldID string) ([]Entry, error) {
	if worldID == "" {
		return nil, apperrors.MissingParam("world ID")
	}

	values, err := l.client.LRange(ctx, logKey(worldID), 0, -1).Result()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read effects for world %s", worldID)
	}

	entries := make([]Entry, 0, len(values))
	for i, v := range values {
		entry, err := decodeEntry([]byte(v), int64(i)+1)
		if err != nil {
			return nil, apperrors.Wrapf(err, "world %s", worldID)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (l *RedisLog) Delete(ctx context.Context, worldID string) error {
	if worldID == "" {
		return apperrors.MissingParam("world ID")
	}
	if err := l.client.Del(ctx, logKey(worldID)).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to delete effects for world %s", worldID)
	}
	return nil
}
