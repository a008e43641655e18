package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/handlers/cli"
	"github.com/KirkDiggler/yahtzee/internal/services"
)

func newRootCommand() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "yahtzee [players]",
		Short: "Play a game of Yahtzee in the terminal",
		Long: `Plays a pass-and-play game: each player rolls five dice up to three times,
then scores the result in one of thirteen categories.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set(config.KeyPlayers, parsePlayers(args[0]))
			}

			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			provider := services.NewProvider(&services.ProviderConfig{
				Roller: rollerFor(cfg.Game.Seed),
			})

			handler := cli.NewHandler(&cli.HandlerConfig{
				GameService: provider.GameService,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			})

			_, err = handler.Play(cmd.Context(), cfg.Game.Players)
			return err
		},
	}

	root.PersistentFlags().Uint64(config.KeySeed, 0, "seed for the dice (0 seeds from the clock)")
	bindFlag(v, config.KeySeed, root.PersistentFlags().Lookup(config.KeySeed))

	root.AddCommand(newSimulateCommand(v))
	root.AddCommand(newVersionCommand())

	return root
}

// parsePlayers reads the player count argument; anything that is not a positive number means one player
func parsePlayers(arg string) int {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 1
	}
	return config.CoercePlayers(n)
}

func rollerFor(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.NewRandomRoller()
	}
	return dice.NewSeededRoller(seed)
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
