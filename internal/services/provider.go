package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chronicler/internal/catalog"
	"github.com/KirkDiggler/chronicler/internal/clients/dnd5e"
	"github.com/KirkDiggler/chronicler/internal/config"
	"github.com/KirkDiggler/chronicler/internal/dice"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/events"
	"github.com/KirkDiggler/chronicler/internal/repositories/effectlog"
	"github.com/KirkDiggler/chronicler/internal/repositories/worlds"
	"github.com/KirkDiggler/chronicler/internal/rules"
	sessionService "github.com/KirkDiggler/chronicler/internal/services/session"
)

const redisPingTimeout = 5 * time.Second

// Provider holds all service instances
type Provider struct {
	Engine         rules.Engine
	Catalog        catalog.Catalog
	Bus            *events.Bus
	SessionService sessionService.Service

	closers []func() error
}

// ProviderConfig holds configuration for creating services. Anything left
// nil falls back to an in-memory or default implementation.
type ProviderConfig struct {
	Roller          dice.Roller
	Catalog         catalog.Catalog
	WorldRepository worlds.Repository
	EffectLog       effectlog.Log
	Bus             *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	worldRepo := cfg.WorldRepository
	if worldRepo == nil {
		worldRepo = worlds.NewInMemoryRepository()
	}

	journal := cfg.EffectLog
	if journal == nil {
		journal = effectlog.NewInMemoryLog(nil)
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
		bus.Subscribe(events.EventTypeAll, events.NewLoggingListener())
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	engine := rules.NewEngine(&rules.EngineConfig{
		Roller:  cfg.Roller,
		Catalog: cat,
	})

	sessService := sessionService.NewService(&sessionService.ServiceConfig{
		Engine:    engine,
		Worlds:    worldRepo,
		EffectLog: journal,
		Publisher: bus,
	})

	return &Provider{
		Engine:         engine,
		Catalog:        cat,
		Bus:            bus,
		SessionService: sessService,
	}
}

// NewProviderFromConfig connects the backends named in cfg and builds the
// provider on top of them. Close releases what it opened.
func NewProviderFromConfig(ctx context.Context, cfg *config.Config) (*Provider, error) {
	if cfg == nil {
		return nil, apperrors.MissingParam("config")
	}

	providerConfig := &ProviderConfig{}
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("Provider: close failed: %v", err)
			}
		}
	}

	if cfg.Dice.Seed != 0 {
		log.Printf("Provider: seeding dice with %d", cfg.Dice.Seed)
		providerConfig.Roller = dice.NewSeededRoller(cfg.Dice.Seed)
	}

	if cfg.DND5E.Enabled {
		dndClient, err := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.HTTPTimeout,
			},
		})
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to create D&D 5e client")
		}
		providerConfig.Catalog = catalog.Chain{
			catalog.Default(),
			catalog.NewRemote(&catalog.RemoteConfig{Client: dndClient}),
		}
		log.Println("Provider: SRD API fallback enabled")
	}

	var redisClient *redis.Client
	if cfg.UseRedis() {
		log.Printf("Provider: connecting to Redis at %s", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			_ = redisClient.Close()
			return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to connect to redis").
				WithMeta("addr", cfg.Redis.Addr)
		}
		closers = append(closers, redisClient.Close)

		providerConfig.WorldRepository = worlds.NewRedis(redisClient, cfg.Session.WorldTTL)
		providerConfig.EffectLog = effectlog.NewRedisLog(&effectlog.RedisLogConfig{
			Client: redisClient,
			TTL:    cfg.Session.WorldTTL,
		})
		log.Println("Provider: using Redis for worlds and effect log")
	} else {
		log.Println("Provider: no REDIS_ADDR, using in-memory worlds")
	}

	// A sqlite file takes the journal even when redis holds the worlds
	if cfg.UseSQLite() {
		sqliteLog, err := effectlog.OpenSQLite(cfg.SQLite.Path, nil)
		if err != nil {
			closeAll()
			return nil, apperrors.Wrapf(err, "failed to open effect log at %s", cfg.SQLite.Path)
		}
		closers = append(closers, sqliteLog.Close)
		providerConfig.EffectLog = sqliteLog
		log.Printf("Provider: effect log at %s", cfg.SQLite.Path)
	}

	p := NewProvider(providerConfig)
	p.closers = closers
	return p, nil
}

// Close releases backend connections, last opened first
func (p *Provider) Close() error {
	var firstErr error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.closers = nil
	return firstErr
}
