package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
	"github.com/KirkDiggler/chronicler/internal/repositories/effectlog"
	"github.com/KirkDiggler/chronicler/internal/repositories/worlds"
	"github.com/KirkDiggler/chronicler/internal/services"
	"github.com/KirkDiggler/chronicler/internal/services/session"
	mocksession "github.com/KirkDiggler/chronicler/internal/services/session/mock"
)

// runWithSession runs the CLI against a mocked session service
func runWithSession(t *testing.T, svc session.Service, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REDIS_ADDR", "")

	a := &app{provider: &services.Provider{SessionService: svc}}
	var out bytes.Buffer
	root := newRootCmdFor(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocksession.NewMockService(ctrl)
	res := effects.Resolution{
		Effects:   []effects.Effect{effects.TimeAdvanced{Minutes: 30}},
		Narrative: "30 minutes pass.",
	}
	svc.EXPECT().
		Resolve(gomock.Any(), "world-1", intents.AdvanceTime{Minutes: 30}).
		Return(&session.Result{
			WorldID:    "world-1",
			Resolution: res,
			Entries:    []effectlog.Entry{{ID: "01J", WorldID: "world-1", Seq: 4, Effect: res.Effects[0]}},
		}, nil)

	out, err := runWithSession(t, svc, `{"type": "AdvanceTime", "data": {"minutes": 30}}`,
		"resolve", "--world", "world-1")
	require.NoError(t, err)
	assert.Equal(t, "30 minutes pass.\n  #4 TimeAdvanced\n", out)
}

func TestResolveCommand_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocksession.NewMockService(ctrl)
	svc.EXPECT().
		Resolve(gomock.Any(), "world-1", intents.ShortRest{}).
		Return(&session.Result{WorldID: "world-1", Resolution: effects.Reject("Cannot take a short rest during combat.")}, nil)

	out, err := runWithSession(t, svc, `{"type": "ShortRest"}`, "resolve", "--world", "world-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cannot take a short rest")
	assert.Contains(t, out, "(rejected, nothing changed)")
}

func TestReplayCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocksession.NewMockService(ctrl)
	w := world.New("Phandalin", character.NewSampleFighter("Roland"))
	w.ID = "world-1"

	svc.EXPECT().Replay(gomock.Any(), "world-1").Return(w, nil)
	out, err := runWithSession(t, svc, "", "replay", "--world", "world-1")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Phandalin"`)

	svc.EXPECT().Restore(gomock.Any(), "world-1").Return(w, nil)
	_, err = runWithSession(t, svc, "", "replay", "--world", "world-1", "--restore")
	require.NoError(t, err)
}

func TestHistoryCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocksession.NewMockService(ctrl)
	recorded := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	gomock.InOrder(
		svc.EXPECT().History(gomock.Any(), "world-1").Return([]effectlog.Entry{
			{ID: "entry-1", WorldID: "world-1", Seq: 1, Effect: effects.TimeAdvanced{Minutes: 10}, RecordedAt: recorded},
		}, nil),
		svc.EXPECT().History(gomock.Any(), "world-2").Return([]effectlog.Entry{}, nil),
	)

	out, err := runWithSession(t, svc, "", "history", "--world", "world-1")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-05-01T18:00:00Z")
	assert.Contains(t, out, "TimeAdvanced")
	assert.Contains(t, out, "entry-1")

	out, err = runWithSession(t, svc, "", "history", "--world", "world-2")
	require.NoError(t, err)
	assert.Equal(t, "No effects logged.\n", out)
}

func TestWorldListCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocksession.NewMockService(ctrl)
	w := world.New("Phandalin", character.NewSampleRogue("Vex", 3))
	w.ID = "world-1"
	w.CurrentLocation = "Stonehill Inn"

	svc.EXPECT().ListWorlds(gomock.Any()).Return([]*worlds.Snapshot{{World: w}}, nil)

	out, err := runWithSession(t, svc, "", "world", "list")
	require.NoError(t, err)
	assert.Equal(t, "world-1\tPhandalin\tVex\tStonehill Inn\n", out)
}

func TestWorldDeleteCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocksession.NewMockService(ctrl)
	svc.EXPECT().DeleteWorld(gomock.Any(), "world-1").Return(nil)

	out, err := runWithSession(t, svc, "", "world", "delete", "--world", "world-1")
	require.NoError(t, err)
	assert.Equal(t, "Deleted world-1\n", out)
}

func TestApp_ReusesProvider(t *testing.T) {
	p := services.NewProvider(nil)
	a := &app{provider: p}

	got, err := a.services(context.Background())
	require.NoError(t, err)
	assert.Same(t, p, got)
}
