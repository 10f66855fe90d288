package effectlog_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/repositories/effectlog"
)

type RedisLogTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	log        *effectlog.RedisLog
}

func (s *RedisLogTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.log = effectlog.NewRedisLog(&effectlog.RedisLogConfig{
		Config: *testConfig(s.T()),
		Client: s.mockClient,
		TTL:    time.Hour,
	})
}

func (s *RedisLogTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisLogTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLogTestSuite))
}

// stored renders an entry exactly as the journal writes it
func (s *RedisLogTestSuite) stored(id string, e effects.Effect) string {
	env, err := effects.Wrap(e)
	s.Require().NoError(err)
	envJSON, err := json.Marshal(env)
	s.Require().NoError(err)
	return fmt.Sprintf(`{"id":%q,"world_id":"world-1","effect":%s,"recorded_at":%d}`, id, envJSON, recordedAt.UnixMilli())
}

func (s *RedisLogTestSuite) TestAppend() {
	ctx := context.Background()
	batch := firstBatch()

	s.mock.ExpectTxPipeline()
	s.mock.ExpectRPush("effectlog:world-1",
		s.stored("entry-1", batch[0]),
		s.stored("entry-2", batch[1]),
	).SetVal(5)
	s.mock.ExpectExpire("effectlog:world-1", time.Hour).SetVal(true)
	s.mock.ExpectTxPipelineExec()

	entries, err := s.log.Append(ctx, "world-1", batch)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	// Three entries were already there
	s.Equal(int64(4), entries[0].Seq)
	s.Equal(int64(5), entries[1].Seq)
}

func (s *RedisLogTestSuite) TestAppend_RedisError() {
	ctx := context.Background()
	batch := firstBatch()[:1]

	s.mock.ExpectTxPipeline()
	s.mock.ExpectRPush("effectlog:world-1", s.stored("entry-1", batch[0])).SetErr(errors.New("redis error"))

	_, err := s.log.Append(ctx, "world-1", batch)
	s.Error(err)
}

func (s *RedisLogTestSuite) TestList() {
	ctx := context.Background()
	batch := firstBatch()

	s.mock.ExpectLRange("effectlog:world-1", 0, -1).SetVal([]string{
		s.stored("entry-1", batch[0]),
		s.stored("entry-2", batch[1]),
	})

	entries, err := s.log.List(ctx, "world-1")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("entry-2", entries[1].ID)
	s.Equal(int64(2), entries[1].Seq)
	s.Equal(recordedAt, entries[0].RecordedAt)
	s.Equal(batch, effectlog.Effects(entries))
}

func (s *RedisLogTestSuite) TestList_Corrupt() {
	ctx := context.Background()

	s.mock.ExpectLRange("effectlog:world-1", 0, -1).SetVal([]string{
		`{"id":"entry-1","world_id":"world-1","effect":{"type":"Teleported","data":{}},"recorded_at":0}`,
	})

	_, err := s.log.List(ctx, "world-1")
	s.True(apperrors.IsInvalidArgument(err))

	s.mock.ExpectLRange("effectlog:world-1", 0, -1).SetVal([]string{"nope"})
	_, err = s.log.List(ctx, "world-1")
	s.True(apperrors.IsParse(err))
}

func (s *RedisLogTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("effectlog:world-1").SetVal(1)
	s.NoError(s.log.Delete(ctx, "world-1"))

	s.mock.ExpectDel("effectlog:world-1").SetErr(errors.New("redis error"))
	s.Error(s.log.Delete(ctx, "world-1"))
}
