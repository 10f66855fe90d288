package worlds_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/chronicler/internal/domain/world"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/repositories/worlds"
	mockworlds "github.com/KirkDiggler/chronicler/internal/repositories/worlds/mock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockworlds.MockTimeProvider
	repo         worlds.Repository
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockworlds.NewMockTimeProvider(s.mockCtrl)
	s.repo = worlds.NewRedisRepository(&worlds.RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) snapshotJSON(w *world.GameWorld, created, updated time.Time) string {
	data, err := json.Marshal(worlds.Snapshot{World: w, CreatedAt: created, UpdatedAt: updated})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	w := sampleWorld("world-1")
	initial, err := json.Marshal(w)
	s.Require().NoError(err)

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSetNX("world:world-1", s.snapshotJSON(w, s.now, s.now), 0).SetVal(true)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("world:world-1:initial", string(initial), 0).SetVal("OK")
	s.mock.ExpectSAdd("worlds", "world-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(ctx, w))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	w := sampleWorld("world-1")

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSetNX("world:world-1", s.snapshotJSON(w, s.now, s.now), 0).SetVal(false)

	err := s.repo.Create(ctx, w)
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_Errors() {
	ctx := context.Background()
	w := sampleWorld("world-1")

	// Dependency error
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSetNX("world:world-1", s.snapshotJSON(w, s.now, s.now), 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.Create(ctx, w))

	// Input validation
	s.True(apperrors.IsInvalidArgument(s.repo.Create(ctx, nil)))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	w := sampleWorld("world-1")

	s.mock.ExpectGet("world:world-1").SetVal(s.snapshotJSON(w, s.now, s.now))

	got, err := s.repo.Get(ctx, "world-1")
	s.Require().NoError(err)
	s.Equal("world-1", got.ID)
	s.Equal("Phandalin", got.Name)
	s.Equal("Roland", got.Player.Name)
	s.Equal(w.Player.HitPoints, got.Player.HitPoints)
	s.Equal(world.ModeExploration, got.Mode)
}

func (s *RedisRepoTestSuite) TestGet_Errors() {
	ctx := context.Background()

	s.mock.ExpectGet("world:missing").RedisNil()
	_, err := s.repo.Get(ctx, "missing")
	s.True(apperrors.IsNotFound(err))
	s.Equal("missing", apperrors.GetMeta(err)["world_id"])

	s.mock.ExpectGet("world:broken").SetVal("{not json")
	_, err = s.repo.Get(ctx, "broken")
	s.True(apperrors.IsParse(err))

	s.mock.ExpectGet("world:world-1").SetErr(errors.New("redis error"))
	_, err = s.repo.Get(ctx, "world-1")
	s.Error(err)

	_, err = s.repo.Get(ctx, "")
	s.True(apperrors.IsMissingParam(err))
}

func (s *RedisRepoTestSuite) TestGetInitial() {
	ctx := context.Background()
	w := sampleWorld("world-1")
	initial, err := json.Marshal(w)
	s.Require().NoError(err)

	s.mock.ExpectGet("world:world-1:initial").SetVal(string(initial))
	got, err := s.repo.GetInitial(ctx, "world-1")
	s.Require().NoError(err)
	s.Equal("world-1", got.ID)

	s.mock.ExpectGet("world:gone:initial").RedisNil()
	_, err = s.repo.GetInitial(ctx, "gone")
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	w := sampleWorld("world-1")
	later := s.now.Add(time.Hour)

	s.mock.ExpectGet("world:world-1").SetVal(s.snapshotJSON(w, s.now, s.now))

	w.Player.HitPoints.Current = 4
	s.timeProvider.EXPECT().Now().Return(later)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("world:world-1", s.snapshotJSON(w, s.now, later), 0).SetVal("OK")
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Update(ctx, w))
}

func (s *RedisRepoTestSuite) TestUpdate_Missing() {
	ctx := context.Background()

	s.mock.ExpectGet("world:world-1").RedisNil()

	err := s.repo.Update(ctx, sampleWorld("world-1"))
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("world:world-1").SetVal(1)
	s.mock.ExpectDel("world:world-1:initial").SetVal(1)
	s.mock.ExpectSRem("worlds", "world-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(ctx, "world-1"))

	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("world:world-1").SetVal(0)
	s.mock.ExpectDel("world:world-1:initial").SetVal(0)
	s.mock.ExpectSRem("worlds", "world-1").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	s.True(apperrors.IsNotFound(s.repo.Delete(ctx, "world-1")))
	s.True(apperrors.IsMissingParam(s.repo.Delete(ctx, "")))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	first := sampleWorld("world-1")
	second := sampleWorld("world-2")

	s.mock.ExpectSMembers("worlds").SetVal([]string{"world-2", "gone", "world-1"})
	s.mock.ExpectMGet("world:world-2", "world:gone", "world:world-1").SetVal([]interface{}{
		s.snapshotJSON(second, s.now.Add(time.Minute), s.now.Add(time.Minute)),
		nil,
		s.snapshotJSON(first, s.now, s.now),
	})

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("world-1", list[0].World.ID)
	s.Equal(s.now, list[0].CreatedAt)
	s.Equal("world-2", list[1].World.ID)

	// Dependency error
	s.mock.ExpectSMembers("worlds").SetErr(errors.New("redis error"))
	_, err = s.repo.List(ctx)
	s.Error(err)

	// Empty index skips the MGET
	s.mock.ExpectSMembers("worlds").SetVal([]string{})
	list, err = s.repo.List(ctx)
	s.NoError(err)
	s.Empty(list)
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without a redis client")
		}
	}()
	worlds.NewRedisRepository(&worlds.RedisRepoConfig{})
}
