package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/snake/internal/controller"
	m "gooze.dev/pkg/snake/internal/model"
)

var speedFlag time.Duration

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a session in the terminal",
		Long: `Start a realtime session. On a terminal the board is drawn live and
read from the keyboard (arrows, wasd or hjkl to steer, r to restart,
q to quit). Otherwise the snake runs until it is lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			settings, err := settingsFromConfig()
			if err != nil {
				return err
			}

			if _, err := game.Start(ctx, settings); err != nil {
				return err
			}

			defer func() {
				if err := game.Close(); err != nil {
					slog.Error("Failed to close game", "error", err)
				}
			}()

			err = ui.Start(ctx,
				controller.WithPlayMode(),
				controller.WithSettings(settings),
				controller.WithFormat(viper.GetString(formatKey)),
			)
			if err != nil {
				return err
			}

			ui.Wait(ctx)
			ui.Close(ctx)
			game.Stop()

			summary, err := game.Summary()
			if err != nil {
				return err
			}

			return ui.DisplaySummary(context.WithoutCancel(ctx), summary)
		},
	}

	configurePlayFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func configurePlayFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&speedFlag, speedFlagName, m.DefaultBasePeriod, "initial time between two snake steps")
	bindFlagToConfig(cmd.Flags().Lookup(speedFlagName), basePeriodKey)
}
