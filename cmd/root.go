// Package cmd provides the root command and CLI setup for snake.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/snake/internal/controller"
	"gooze.dev/pkg/snake/internal/domain"
	m "gooze.dev/pkg/snake/internal/model"
)

var game domain.Game
var ui controller.UI

// sizeFlag is a root-level flag shared by commands that start a session.
var sizeFlag int

// seedFlag fixes fruit placement for reproducible sessions.
var seedFlag uint64

// formatFlag selects how summaries are printed.
var formatFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	game = domain.NewGame("")
	ui = controller.NewUI(rootCmd, game, controller.IsTTY(os.Stdout))
}

const rootLongDescription = `Snake is a grid snake game for the terminal.

The snake advances on its own and speeds up with every fruit it eats.
Leaving the board or biting its own body ends the session.`

const simLongDescription = `Play a session headless in virtual time and print the outcome.

Moves are written as OFFSET:DIRECTION, for example 700ms:down or 2s:l,
and are applied at that offset from the start of the session.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snake",
		Short: "Terminal snake game",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&sizeFlag, sizeFlagName, m.DefaultBoardSize, "board size (rows and columns 0..size are in bounds)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sizeFlagName), boardSizeKey)

	cmd.PersistentFlags().Uint64Var(&seedFlag, seedFlagName, 0, "seed for fruit placement (0 picks a time-based seed)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(seedFlagName), seedKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "summary format: table or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
