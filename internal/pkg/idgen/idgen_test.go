package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-equipment/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		_, err := ids.ItemIDFromString(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("00000000-0000-4000-8000-")

	assert.Equal(t, "00000000-0000-4000-8000-000000000001", gen.Generate())
	assert.Equal(t, "00000000-0000-4000-8000-000000000002", gen.Generate())

	_, err := ids.ItemIDFromString(gen.Generate())
	assert.NoError(t, err)
}
