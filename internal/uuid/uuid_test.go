package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/chronicler/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	a, b := gen.New(), gen.New()

	assert.True(t, uuid.IsValid(a))
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("npc")

	assert.Equal(t, "npc-1", gen.New())
	assert.Equal(t, "npc-2", gen.New())
	assert.False(t, uuid.IsValid("npc-3"))
}

func TestULIDGenerator(t *testing.T) {
	gen := uuid.NewULIDGenerator()

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = gen.New()
	}

	for i, id := range ids {
		assert.True(t, uuid.IsULID(id), id)
		if i > 0 {
			assert.Less(t, ids[i-1], id)
		}
	}
	assert.False(t, uuid.IsULID("not-a-ulid"))
	assert.False(t, uuid.IsValid(ids[0]))
}
