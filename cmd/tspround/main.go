// Package main provides the CLI entry point for tspround.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/config"
)

var (
	// Version information (set at build time)
	version = "dev"

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// app is the state shared by all subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		a          = &app{logger: zerolog.Nop()}
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "tspround",
		Short: "Travelling Salesman round: compare route algorithms and grade a route",
		Long: titleStyle.Render("tspround") + `

Generates a random board of cities, runs four route strategies
(brute force, plain recursion, nearest neighbour, Held-Karp) from the
home city over the chosen targets, and grades your own route against
the optimum.

` + dimStyle.Render("Use 'tspround [command] --help' for more information."),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(stderr, cfg.Log.Level)

			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./tspround.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(newPlayCmd(a), newEstimateCmd(a))

	return rootCmd
}

// newLogger builds the console logger used by every subcommand.
// level has already been validated by config.Validate.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "tspround").
		Logger()
}

// printf writes to the command's stdout.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
