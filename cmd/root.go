package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorwall/internal/jsce"
	"github.com/alexiusacademia/gorwall/internal/version"
	"github.com/alexiusacademia/gorwall/internal/wall"
)

var (
	configFile string
	logLevel   string
	logJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "gorwall",
	Short: "Cantilever Retaining Wall Stem Checker",
	Long: `gorwall - Go Reinforced Concrete Retaining Wall Checker

A CLI tool for the limit state checks of the stem of a reinforced
concrete cantilever retaining wall under earth pressure and seismic load,
following the JSCE Standard Specifications for Concrete Structures.

This tool helps structural engineers perform:
  - Flexural capacity checks (permanent and seismic)
  - Shear capacity checks (permanent and seismic)
  - Serviceability crack width checks
  - A discrete search for the stem using the least concrete and steel

Design constants may be overridden with a YAML file (--config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gorwall v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Reinforced Concrete Retaining Wall Checker           ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Checks the stem of a cantilever retaining wall for bending,")
		fmt.Fprintln(out, "  shear and crack width at the standard check sections.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Safety ratios under permanent and seismic load cases")
		fmt.Fprintln(out, "    • Report tables as text, LaTeX or Excel")
		fmt.Fprintln(out, "    • Elevation and utilization diagrams")
		fmt.Fprintln(out, "    • Minimum concrete / steel design search")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gorwall --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file overriding the design constants")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON instead of console text")
}

func setupLogging() error {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if logJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

// loadModel builds the wall model from the defaults or the --config file.
func loadModel() (wall.Model, error) {
	c := jsce.Default()
	if configFile != "" {
		var err error
		c, err = jsce.LoadFromFile(configFile)
		if err != nil {
			return wall.Model{}, err
		}
		log.Debug().Str("file", configFile).Msg("Loaded design constants")
	}
	return wall.NewModel(c), nil
}
