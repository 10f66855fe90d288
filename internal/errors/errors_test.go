package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperrors.NotFoundf("world %s not found", "w-1").WithMeta("world_id", "w-1")

	wrapped := apperrors.Wrap(base, "failed to load world")

	require.NotNil(t, wrapped)
	assert.Equal(t, apperrors.CodeNotFound, wrapped.Code)
	assert.True(t, apperrors.IsNotFound(wrapped))
	assert.Equal(t, "w-1", apperrors.GetMeta(wrapped)["world_id"])
	assert.Equal(t, "failed to load world: world w-1 not found", wrapped.Error())
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := apperrors.Wrapf(stderrors.New("boom"), "step %d", 2)

	assert.Equal(t, apperrors.CodeUnknown, apperrors.GetCode(wrapped))
	assert.Equal(t, "step 2: boom", wrapped.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperrors.Wrap(nil, "nothing"))
	assert.Nil(t, apperrors.WrapWithCode(nil, apperrors.CodeInternal, "nothing"))
}

func TestIs_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", apperrors.Parsef("bad notation %q", "2x6"))

	assert.True(t, apperrors.IsParse(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestMissingParam(t *testing.T) {
	err := apperrors.MissingParam("Roller")

	assert.True(t, apperrors.IsMissingParam(err))
	assert.Equal(t, "missing parameter: Roller", err.Error())
	assert.Equal(t, "Roller", err.Meta["param"])
}
