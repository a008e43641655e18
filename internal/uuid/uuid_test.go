package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/uuid"
	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, gen.New())
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("game")
	assert.Equal(t, "game-1", gen.New())
	assert.Equal(t, "game-2", gen.New())
}
