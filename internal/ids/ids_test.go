package ids

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGeneratorFormat(t *testing.T) {
	id, err := UUIDGenerator{}.NewID()
	require.NoError(t, err)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestUUIDGeneratorUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id, err := UUIDGenerator{}.NewID()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestGeneratorFunc(t *testing.T) {
	boom := errors.New("boom")
	gen := GeneratorFunc(func() (string, error) { return "", boom })
	_, err := gen.NewID()
	assert.ErrorIs(t, err, boom)
}
