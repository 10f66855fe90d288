package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockdice "github.com/KirkDiggler/chronicler/internal/dice/mock"
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/events"
	"github.com/KirkDiggler/chronicler/internal/intents"
	"github.com/KirkDiggler/chronicler/internal/repositories/effectlog"
	mockeffectlog "github.com/KirkDiggler/chronicler/internal/repositories/effectlog/mock"
	"github.com/KirkDiggler/chronicler/internal/repositories/worlds"
	mockworlds "github.com/KirkDiggler/chronicler/internal/repositories/worlds/mock"
	"github.com/KirkDiggler/chronicler/internal/rules"
	mockrules "github.com/KirkDiggler/chronicler/internal/rules/mock"
	"github.com/KirkDiggler/chronicler/internal/services/session"
	"github.com/KirkDiggler/chronicler/internal/uuid"
	mockuuid "github.com/KirkDiggler/chronicler/internal/uuid/mock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	worlds   worlds.Repository
	log      effectlog.Log
	recorder *events.Recorder
	svc      session.Service
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.worlds = worlds.NewInMemoryRepository()
	s.log = effectlog.NewInMemoryLog(&effectlog.Config{IDGenerator: uuid.NewSequenceGenerator("entry")})
	s.recorder = events.NewRecorder("test-recorder")

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeAll, s.recorder)

	s.svc = session.NewService(&session.ServiceConfig{
		Engine: rules.NewEngine(&rules.EngineConfig{
			Roller:        mockdice.NewManualMockRoller(),
			UUIDGenerator: uuid.NewSequenceGenerator("id"),
		}),
		Worlds:        s.worlds,
		EffectLog:     s.log,
		Publisher:     bus,
		UUIDGenerator: uuid.NewSequenceGenerator("world"),
	})
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) createWorld(name string) *world.GameWorld {
	w, err := s.svc.CreateWorld(context.Background(), &session.CreateWorldInput{
		Name:   name,
		Player: character.NewSampleFighter("Roland"),
	})
	s.Require().NoError(err)
	return w
}

func (s *SessionServiceTestSuite) jsonOf(w *world.GameWorld) string {
	data, err := json.Marshal(w)
	s.Require().NoError(err)
	return string(data)
}

func (s *SessionServiceTestSuite) TestCreateWorld() {
	w := s.createWorld("  Phandalin ")

	s.Equal("world-1", w.ID)
	s.Equal("Phandalin", w.Name)

	stored, err := s.svc.GetWorld(context.Background(), "world-1")
	s.Require().NoError(err)
	s.Equal("Roland", stored.Player.Name)
}

func (s *SessionServiceTestSuite) TestCreateWorld_Validation() {
	testCases := []struct {
		name  string
		input *session.CreateWorldInput
	}{
		{name: "nil input", input: nil},
		{name: "no name", input: &session.CreateWorldInput{Name: " ", Player: character.NewSampleFighter("Roland")}},
		{name: "no player", input: &session.CreateWorldInput{Name: "Phandalin"}},
		{name: "nameless player", input: &session.CreateWorldInput{Name: "Phandalin", Player: &character.Character{}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.CreateWorld(context.Background(), tc.input)
			s.True(apperrors.IsInvalidArgument(err))
		})
	}
}

func (s *SessionServiceTestSuite) TestResolve_CommitsEffects() {
	ctx := context.Background()
	w := s.createWorld("Phandalin")

	result, err := s.svc.Resolve(ctx, w.ID, intents.AdvanceTime{Minutes: 90})
	s.Require().NoError(err)
	s.False(result.Resolution.Rejected())
	s.Require().Len(result.Entries, 1)
	s.Equal(int64(1), result.Entries[0].Seq)
	s.Equal("entry-1", result.Entries[0].ID)
	s.Equal(9, result.World.Time.Hour)
	s.Equal(30, result.World.Time.Minute)

	stored, err := s.svc.GetWorld(ctx, w.ID)
	s.Require().NoError(err)
	s.Equal(result.World.Time, stored.Time)

	s.Equal([]effects.Effect{effects.TimeAdvanced{Minutes: 90}}, s.recorder.Effects(w.ID))
}

func (s *SessionServiceTestSuite) TestResolve_RejectedIsNotJournalled() {
	ctx := context.Background()
	w := s.createWorld("Phandalin")

	result, err := s.svc.Resolve(ctx, w.ID, intents.AdvanceTime{Minutes: -5})
	s.Require().NoError(err)
	s.True(result.Resolution.Rejected())
	s.Empty(result.Entries)
	s.Contains(result.Resolution.Narrative, "Invalid time")

	history, err := s.svc.History(ctx, w.ID)
	s.Require().NoError(err)
	s.Empty(history)
	s.Empty(s.recorder.Effects(w.ID))
}

func (s *SessionServiceTestSuite) TestResolve_Errors() {
	ctx := context.Background()

	_, err := s.svc.Resolve(ctx, "", intents.ShortRest{})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.svc.Resolve(ctx, "world-1", nil)
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.svc.Resolve(ctx, "missing", intents.ShortRest{})
	s.True(apperrors.IsNotFound(err))
	s.Equal("missing", apperrors.GetMeta(err)["world_id"])

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	w := s.createWorld("Phandalin")
	_, err = s.svc.Resolve(cancelled, w.ID, intents.ShortRest{})
	s.ErrorIs(err, context.Canceled)
}

func (s *SessionServiceTestSuite) TestReplay_MatchesCurrentState() {
	ctx := context.Background()
	w := s.createWorld("Phandalin")

	for _, intent := range []intents.Intent{
		intents.AdvanceTime{Minutes: 45},
		intents.AddItem{ItemName: "Torch", Quantity: 3},
		intents.AdjustGold{Amount: -4, Reason: "Ale"},
		intents.Damage{Amount: 6, Source: "Goblin"},
		intents.Heal{Amount: 2, Source: "Bandage"},
	} {
		result, err := s.svc.Resolve(ctx, w.ID, intent)
		s.Require().NoError(err)
		s.Require().False(result.Resolution.Rejected(), result.Resolution.Narrative)
	}

	current, err := s.svc.GetWorld(ctx, w.ID)
	s.Require().NoError(err)

	replayed, err := s.svc.Replay(ctx, w.ID)
	s.Require().NoError(err)
	s.JSONEq(s.jsonOf(current), s.jsonOf(replayed))

	history, err := s.svc.History(ctx, w.ID)
	s.Require().NoError(err)
	s.Equal(effectlog.Effects(history), s.recorder.Effects(w.ID))
	for i, entry := range history {
		s.Equal(int64(i+1), entry.Seq)
	}
}

func (s *SessionServiceTestSuite) TestRestore_RepairsStaleSnapshot() {
	ctx := context.Background()
	w := s.createWorld("Phandalin")

	_, err := s.svc.Resolve(ctx, w.ID, intents.Damage{Amount: 5, Source: "Wolf"})
	s.Require().NoError(err)
	expected, err := s.svc.GetWorld(ctx, w.ID)
	s.Require().NoError(err)

	// Snapshot drifts away from the journal
	stale := expected.Clone()
	stale.Player.HitPoints.Current = stale.Player.HitPoints.Maximum
	stale.Name = "Tampered"
	s.Require().NoError(s.worlds.Update(ctx, stale))

	restored, err := s.svc.Restore(ctx, w.ID)
	s.Require().NoError(err)
	s.JSONEq(s.jsonOf(expected), s.jsonOf(restored))

	stored, err := s.svc.GetWorld(ctx, w.ID)
	s.Require().NoError(err)
	s.Equal("Phandalin", stored.Name)
	s.Equal(expected.Player.HitPoints.Current, stored.Player.HitPoints.Current)
}

func (s *SessionServiceTestSuite) TestResolveBatch() {
	ctx := context.Background()
	first := s.createWorld("Phandalin")
	second := s.createWorld("Neverwinter")

	results, err := s.svc.ResolveBatch(ctx, []session.Request{
		{WorldID: first.ID, Intent: intents.AdvanceTime{Minutes: 30}},
		{WorldID: second.ID, Intent: intents.AdvanceTime{Minutes: 120}},
		{WorldID: first.ID, Intent: intents.AdvanceTime{Minutes: 30}},
		{WorldID: second.ID, Intent: intents.AdvanceTime{Minutes: 0}},
	})
	s.Require().NoError(err)
	s.Require().Len(results, 4)

	s.Equal(first.ID, results[0].WorldID)
	s.Equal(30, results[0].World.Time.Minute)
	s.Equal(9, results[2].World.Time.Hour)
	s.Equal(0, results[2].World.Time.Minute)
	s.Equal(int64(2), results[2].Entries[0].Seq)

	s.Equal(10, results[1].World.Time.Hour)
	s.True(results[3].Resolution.Rejected())

	history, err := s.svc.History(ctx, second.ID)
	s.Require().NoError(err)
	s.Len(history, 1)
}

func (s *SessionServiceTestSuite) TestResolveBatch_Errors() {
	ctx := context.Background()

	_, err := s.svc.ResolveBatch(ctx, []session.Request{{Intent: intents.ShortRest{}}})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.svc.ResolveBatch(ctx, []session.Request{{WorldID: "world-1"}})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.svc.ResolveBatch(ctx, []session.Request{{WorldID: "missing", Intent: intents.ShortRest{}}})
	s.True(apperrors.IsNotFound(err))

	results, err := s.svc.ResolveBatch(ctx, nil)
	s.NoError(err)
	s.Empty(results)
}

func (s *SessionServiceTestSuite) TestDeleteWorld() {
	ctx := context.Background()
	w := s.createWorld("Phandalin")
	_, err := s.svc.Resolve(ctx, w.ID, intents.AdvanceTime{Minutes: 10})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteWorld(ctx, w.ID))

	_, err = s.svc.GetWorld(ctx, w.ID)
	s.True(apperrors.IsNotFound(err))
	history, err := s.log.List(ctx, w.ID)
	s.Require().NoError(err)
	s.Empty(history)

	s.True(apperrors.IsNotFound(s.svc.DeleteWorld(ctx, w.ID)))
	s.True(apperrors.IsInvalidArgument(s.svc.DeleteWorld(ctx, "")))
}

func (s *SessionServiceTestSuite) TestListWorlds() {
	s.createWorld("Phandalin")
	s.createWorld("Neverwinter")

	list, err := s.svc.ListWorlds(context.Background())
	s.Require().NoError(err)
	s.Len(list, 2)
}

func TestService_JournalFailureSkipsSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mockrules.NewMockEngine(ctrl)
	mockWorlds := mockworlds.NewMockRepository(ctrl)
	mockLog := mockeffectlog.NewMockLog(ctrl)

	svc := session.NewService(&session.ServiceConfig{
		Engine:    mockEngine,
		Worlds:    mockWorlds,
		EffectLog: mockLog,
	})

	ctx := context.Background()
	w := world.New("Phandalin", character.NewSampleFighter("Roland"))
	res := effects.Resolution{
		Effects:   []effects.Effect{effects.TimeAdvanced{Minutes: 10}},
		Narrative: "10 minutes pass.",
	}

	mockWorlds.EXPECT().Get(ctx, "world-1").Return(w, nil)
	mockEngine.EXPECT().Resolve(w, intents.AdvanceTime{Minutes: 10}).Return(res)
	mockLog.EXPECT().Append(ctx, "world-1", res.Effects).Return(nil, errors.New("disk full"))
	// No Apply and no Update

	_, err := svc.Resolve(ctx, "world-1", intents.AdvanceTime{Minutes: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "world-1", apperrors.GetMeta(err)["world_id"])
}

func TestService_SaveFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mockrules.NewMockEngine(ctrl)
	mockWorlds := mockworlds.NewMockRepository(ctrl)
	mockLog := mockeffectlog.NewMockLog(ctrl)

	svc := session.NewService(&session.ServiceConfig{
		Engine:    mockEngine,
		Worlds:    mockWorlds,
		EffectLog: mockLog,
	})

	ctx := context.Background()
	w := world.New("Phandalin", character.NewSampleFighter("Roland"))
	res := effects.Resolution{
		Effects:   []effects.Effect{effects.TimeAdvanced{Minutes: 10}},
		Narrative: "10 minutes pass.",
	}
	entries := []effectlog.Entry{{ID: "entry-1", WorldID: "world-1", Seq: 1, Effect: res.Effects[0]}}

	gomock.InOrder(
		mockWorlds.EXPECT().Get(ctx, "world-1").Return(w, nil),
		mockEngine.EXPECT().Resolve(w, intents.AdvanceTime{Minutes: 10}).Return(res),
		mockLog.EXPECT().Append(ctx, "world-1", res.Effects).Return(entries, nil),
		mockEngine.EXPECT().Apply(w, res.Effects),
		mockWorlds.EXPECT().Update(ctx, w).Return(errors.New("redis down")),
	)

	_, err := svc.Resolve(ctx, "world-1", intents.AdvanceTime{Minutes: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

func TestService_PublisherErrorsDoNotFailRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mockrules.NewMockEngine(ctrl)
	mockWorlds := mockworlds.NewMockRepository(ctrl)
	mockLog := mockeffectlog.NewMockLog(ctrl)

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeAll, events.NewListenerFunc("broken", events.PriorityNotification, func(events.Event) error {
		return errors.New("listener broke")
	}))

	svc := session.NewService(&session.ServiceConfig{
		Engine:    mockEngine,
		Worlds:    mockWorlds,
		EffectLog: mockLog,
		Publisher: bus,
	})

	ctx := context.Background()
	w := world.New("Phandalin", character.NewSampleFighter("Roland"))

	mockWorlds.EXPECT().Get(ctx, "world-1").Return(w, nil)
	mockEngine.EXPECT().Resolve(w, intents.LongRest{}).Return(effects.Reject("Not now."))

	result, err := svc.Resolve(ctx, "world-1", intents.LongRest{})
	require.NoError(t, err)
	assert.True(t, result.Resolution.Rejected())
}

func TestNewService_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mockrules.NewMockEngine(ctrl)
	repo := mockworlds.NewMockRepository(ctrl)
	journal := mockeffectlog.NewMockLog(ctrl)

	testCases := []struct {
		name string
		cfg  *session.ServiceConfig
	}{
		{name: "no engine", cfg: &session.ServiceConfig{Worlds: repo, EffectLog: journal}},
		{name: "no worlds", cfg: &session.ServiceConfig{Engine: engine, EffectLog: journal}},
		{name: "no effect log", cfg: &session.ServiceConfig{Engine: engine, Worlds: repo}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { session.NewService(tc.cfg) })
		})
	}
}

func TestService_CreateWorldFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorlds := mockworlds.NewMockRepository(ctrl)
	mockUUID := mockuuid.NewMockGenerator(ctrl)

	svc := session.NewService(&session.ServiceConfig{
		Engine:        mockrules.NewMockEngine(ctrl),
		Worlds:        mockWorlds,
		EffectLog:     mockeffectlog.NewMockLog(ctrl),
		UUIDGenerator: mockUUID,
	})

	ctx := context.Background()
	mockUUID.EXPECT().New().Return("world-abc")
	mockWorlds.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, w *world.GameWorld) error {
			assert.Equal(t, "world-abc", w.ID)
			return apperrors.AlreadyExistsf("world world-abc already exists")
		})

	_, err := svc.CreateWorld(ctx, &session.CreateWorldInput{
		Name:   "Phandalin",
		Player: character.NewSampleFighter("Roland"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))
	assert.Equal(t, "world-abc", apperrors.GetMeta(err)["world_id"])
	assert.Equal(t, "Phandalin", apperrors.GetMeta(err)["world_name"])
}
