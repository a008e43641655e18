package config

import (
	"github.com/spf13/viper"

	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. YAHTZEE_PLAYERS
	EnvPrefix = "YAHTZEE"

	KeyPlayers     = "players"
	KeySeed        = "seed"
	KeySimGames    = "sim_games"
	KeySimWorkers  = "sim_workers"
	defaultPlayers = 1
)

// Config holds all configuration for the application
type Config struct {
	Game       GameConfig
	Simulation SimulationConfig
}

// GameConfig holds settings for interactive games
type GameConfig struct {
	Players int
	Seed    uint64 // 0 seeds dice from the clock
}

// SimulationConfig holds settings for autoplay runs
type SimulationConfig struct {
	Games   int
	Workers int
}

// NewViper returns a viper instance reading YAHTZEE_* environment variables with defaults set
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyPlayers, defaultPlayers)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeySimGames, 1000)
	v.SetDefault(KeySimWorkers, 4)
	return v
}

// Load loads configuration from v, or from the environment when v is nil
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	cfg := &Config{
		Game: GameConfig{
			Players: CoercePlayers(v.GetInt(KeyPlayers)),
			Seed:    v.GetUint64(KeySeed),
		},
		Simulation: SimulationConfig{
			Games:   v.GetInt(KeySimGames),
			Workers: v.GetInt(KeySimWorkers),
		},
	}

	// Validate simulation settings
	if cfg.Simulation.Games < 1 {
		return nil, apperr.InvalidArgumentf("%s_SIM_GAMES must be positive, got %d", EnvPrefix, cfg.Simulation.Games)
	}
	if cfg.Simulation.Workers < 1 {
		return nil, apperr.InvalidArgumentf("%s_SIM_WORKERS must be positive, got %d", EnvPrefix, cfg.Simulation.Workers)
	}

	return cfg, nil
}

// CoercePlayers maps a missing or non-positive player count to one player
func CoercePlayers(n int) int {
	if n <= 0 {
		return defaultPlayers
	}
	return n
}
