package intents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func TestUnmarshal_FromWire(t *testing.T) {
	raw := `{"type":"Attack","data":{"attacker_id":"p1","target_id":"g1","weapon_name":"Longsword","advantage":"advantage"}}`

	got, err := intents.Unmarshal([]byte(raw))
	require.NoError(t, err)

	attack, ok := got.(intents.Attack)
	require.True(t, ok, "decodes to the value type")
	assert.Equal(t, "Longsword", attack.WeaponName)
	assert.Equal(t, dice.WithAdvantage, attack.Advantage)
}

func TestUnmarshal_UnitVariantWithoutData(t *testing.T) {
	got, err := intents.Unmarshal([]byte(`{"type":"ShortRest"}`))
	require.NoError(t, err)
	assert.Equal(t, intents.KindShortRest, got.Kind())
}

func TestMarshal_KeepsOptionalFields(t *testing.T) {
	rounds := 3
	in := intents.ApplyCondition{TargetID: "p1", Condition: conditions.Poisoned, Source: "spider", DurationRounds: &rounds}

	data, err := intents.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"ApplyCondition"`)

	out, err := intents.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := intents.Unmarshal([]byte(`{"type":"Fly"}`))
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = intents.Unmarshal([]byte(`not json`))
	assert.True(t, apperrors.IsParse(err))

	_, err = intents.Unmarshal([]byte(`{"type":"Damage","data":{"amount":"lots"}}`))
	assert.True(t, apperrors.IsParse(err))

	_, err = intents.Marshal(nil)
	assert.True(t, apperrors.IsMissingParam(err))
}

func TestKinds_EveryVariantRoundTrips(t *testing.T) {
	kinds := intents.Kinds()
	assert.GreaterOrEqual(t, len(kinds), 60)

	for _, kind := range kinds {
		zero, ok := intents.New(kind)
		require.True(t, ok, kind)
		assert.Equal(t, kind, zero.Kind())

		data, err := intents.Marshal(zero)
		require.NoError(t, err, kind)
		back, err := intents.Unmarshal(data)
		require.NoError(t, err, kind)
		assert.Equal(t, zero, back, kind)
	}
}
