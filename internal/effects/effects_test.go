package effects_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

func TestBuilder(t *testing.T) {
	res := effects.NewBuilder("%s attacks", "Roland").
		Append(" with %s.", "Longsword").
		Line("Hit!").
		Add(effects.CombatStarted{}, effects.CombatEnded{}).
		Build()

	assert.Equal(t, "Roland attacks with Longsword. Hit!", res.Narrative)
	assert.Equal(t, []effects.Kind{effects.KindCombatStarted, effects.KindCombatEnded}, res.Kinds())
	assert.False(t, res.Rejected())
	assert.True(t, res.Has(effects.KindCombatEnded))
	assert.Equal(t, 1, res.Count(effects.KindCombatStarted))
}

func TestReject(t *testing.T) {
	res := effects.Reject("%s is unconscious and cannot attack!", "Roland")
	assert.True(t, res.Rejected())
	assert.Empty(t, res.Effects)
	assert.Contains(t, res.Narrative, "unconscious")
}

func TestList_RoundTripKeepsOrder(t *testing.T) {
	rounds := 2
	list := []effects.Effect{
		effects.DiceRolled{Roll: &dice.Result{Expression: "1d20+5", Total: 17, Modifier: 5}, Purpose: "Attack roll"},
		effects.AttackHit{AttackerName: "Roland", TargetName: "Goblin", AttackRoll: 17, TargetAC: 15},
		effects.HPChanged{TargetID: "g1", Amount: -7, NewCurrent: 0, NewMax: 7, DroppedToZero: true},
		effects.ConditionApplied{TargetID: "g1", Condition: conditions.Prone, Source: "shove", DurationRounds: &rounds},
	}

	data, err := effects.MarshalList(list)
	require.NoError(t, err)

	back, err := effects.UnmarshalList(data)
	require.NoError(t, err)
	assert.Equal(t, list, back)
}

func TestResolution_JSON(t *testing.T) {
	res := effects.NewBuilder("Combat begins!").Add(effects.CombatStarted{}).Build()

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"effects":[{"type":"CombatStarted","data":{}}],"narrative":"Combat begins!"}`, string(data))

	var back effects.Resolution
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, res, back)

	rejected := effects.Reject("nope")
	data, err = json.Marshal(rejected)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Rejected())
}

func TestDecode_Errors(t *testing.T) {
	_, err := effects.Unmarshal([]byte(`{"type":"Teleported"}`))
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = effects.UnmarshalList([]byte(`[{"type":"LevelUp","data":{"new_level":"two"}}]`))
	assert.True(t, apperrors.IsParse(err))
}

func TestKinds_EveryVariantRoundTrips(t *testing.T) {
	kinds := effects.Kinds()
	assert.GreaterOrEqual(t, len(kinds), 70)

	for _, kind := range kinds {
		zero, ok := effects.New(kind)
		require.True(t, ok, kind)
		data, err := effects.Marshal(zero)
		require.NoError(t, err, kind)
		back, err := effects.Unmarshal(data)
		require.NoError(t, err, kind)
		assert.Equal(t, zero, back, kind)
	}
}
