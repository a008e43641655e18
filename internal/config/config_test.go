package config_test

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Game.Players)
	assert.Equal(t, uint64(0), cfg.Game.Seed)
	assert.Equal(t, 1000, cfg.Simulation.Games)
	assert.Equal(t, 4, cfg.Simulation.Workers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("YAHTZEE_PLAYERS", "3")
	t.Setenv("YAHTZEE_SEED", "42")
	t.Setenv("YAHTZEE_SIM_GAMES", "10")
	t.Setenv("YAHTZEE_SIM_WORKERS", "2")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Game.Players)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 10, cfg.Simulation.Games)
	assert.Equal(t, 2, cfg.Simulation.Workers)
}

func TestLoad_CoercesPlayers(t *testing.T) {
	t.Setenv("YAHTZEE_PLAYERS", "-4")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Game.Players)
}

func TestLoad_InvalidSimulation(t *testing.T) {
	v := config.NewViper()
	v.Set(config.KeySimWorkers, 0)

	_, err := config.Load(v)
	assert.Error(t, err)

	v = config.NewViper()
	v.Set(config.KeySimGames, -1)

	_, err = config.Load(v)
	assert.Error(t, err)
}

func TestCoercePlayers(t *testing.T) {
	assert.Equal(t, 1, config.CoercePlayers(0))
	assert.Equal(t, 1, config.CoercePlayers(-1))
	assert.Equal(t, 5, config.CoercePlayers(5))
}
