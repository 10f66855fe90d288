package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/intents"
	"github.com/KirkDiggler/chronicler/internal/repositories/effectlog"
	"github.com/KirkDiggler/chronicler/internal/repositories/worlds"
	"github.com/KirkDiggler/chronicler/internal/rules"
	"github.com/KirkDiggler/chronicler/internal/uuid"
)

func newLockTestService(t *testing.T) *service {
	t.Helper()
	svc, ok := NewService(&ServiceConfig{
		Engine:        rules.NewEngine(&rules.EngineConfig{UUIDGenerator: uuid.NewSequenceGenerator("id")}),
		Worlds:        worlds.NewInMemoryRepository(),
		EffectLog:     effectlog.NewInMemoryLog(nil),
		UUIDGenerator: uuid.NewSequenceGenerator("world"),
	}).(*service)
	require.True(t, ok)
	return svc
}

func TestWorldLocks_ReleasedAfterDelete(t *testing.T) {
	ctx := context.Background()
	svc := newLockTestService(t)

	w, err := svc.CreateWorld(ctx, &CreateWorldInput{Name: "Phandalin", Player: character.NewSampleFighter("Roland")})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, w.ID, intents.AdvanceTime{Minutes: 10})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteWorld(ctx, w.ID))

	assert.Empty(t, svc.locks)
}

func TestWorldLocks_ReleasedAfterConcurrentUse(t *testing.T) {
	ctx := context.Background()
	svc := newLockTestService(t)

	w, err := svc.CreateWorld(ctx, &CreateWorldInput{Name: "Phandalin", Player: character.NewSampleFighter("Roland")})
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := svc.Resolve(ctx, w.ID, intents.AdvanceTime{Minutes: 1})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Empty(t, svc.locks)

	stored, err := svc.GetWorld(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Time.Minute)

	history, err := svc.History(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, history, 20)
}
