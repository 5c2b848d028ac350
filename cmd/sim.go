package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/snake/internal/controller"
	"gooze.dev/pkg/snake/internal/domain"
)

var simDurationFlag time.Duration
var simMovesFlag []string

// simCmd represents the sim command.
var simCmd = newSimCmd()

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Simulate a session with scripted moves",
		Long:  simLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			settings, err := settingsFromConfig()
			if err != nil {
				return err
			}

			moves, err := parseMoves(viper.GetStringSlice(simMovesKey))
			if err != nil {
				return err
			}

			result, err := game.Simulate(ctx, domain.SimulateArgs{
				Settings: settings,
				Moves:    moves,
				Duration: viper.GetDuration(simDurationKey),
			})
			if err != nil {
				return err
			}

			err = ui.Start(ctx, controller.WithReplayMode(), controller.WithFormat(viper.GetString(formatKey)))
			if err != nil {
				return err
			}
			defer ui.Close(ctx)

			if err := ui.DisplaySnapshot(ctx, result.Snapshot); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Simulated %s of play\n", result.Elapsed)

			return ui.DisplaySummary(ctx, result.Summary)
		},
	}

	configureSimFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(simCmd)
}

func configureSimFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVarP(&simDurationFlag, durationFlagName, "d", defaultSimDuration, "virtual time to simulate (0 runs until the snake is lost)")
	bindFlagToConfig(cmd.Flags().Lookup(durationFlagName), simDurationKey)

	cmd.Flags().StringArrayVarP(&simMovesFlag, moveFlagName, "m", nil, "scripted move OFFSET:DIRECTION (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(moveFlagName), simMovesKey)
}
