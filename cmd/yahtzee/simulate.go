package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/KirkDiggler/yahtzee/internal/services/autoplay"
)

func newSimulateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many games automatically and print score statistics",
		Long: `Plays complete single-player games without input. Every turn rolls once and
takes the open category worth the most. Useful to check the engine end to end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			summary, err := autoplay.NewService(nil).Run(cmd.Context(), &autoplay.RunInput{
				Games:   cfg.Simulation.Games,
				Workers: cfg.Simulation.Workers,
				Seed:    cfg.Game.Seed,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Games:     %d\n", summary.Games)
			fmt.Fprintf(out, "Mean:      %.1f\n", summary.Mean)
			fmt.Fprintf(out, "Min/Max:   %d/%d\n", summary.Min, summary.Max)
			fmt.Fprintf(out, "Bonus:     %.1f%%\n", summary.BonusRate*100)
			fmt.Fprintf(out, "Yahtzees:  %d\n", summary.YahtzeeCount)
			return nil
		},
	}

	cmd.Flags().Int("games", 1000, "number of games to play")
	cmd.Flags().Int("workers", 4, "number of games played at once")
	bindFlag(v, config.KeySimGames, cmd.Flags().Lookup("games"))
	bindFlag(v, config.KeySimWorkers, cmd.Flags().Lookup("workers"))

	return cmd
}
