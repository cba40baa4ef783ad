package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"h2_simulator/internal/scenario"
)

// NewRootCmd builds the h2sim command tree. The returned command is fully
// wired so tests can execute it with injected args and output writers.
func NewRootCmd(version string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "h2sim",
		Short:         "Solar-to-hydrogen plant simulator",
		Long:          "h2sim models a solar-powered PEM electrolysis plant: polarization curve, 24h solar profile, hydrogen output and plant economics.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("scenario", "", "path to a scenario YAML file")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newTUICmd())

	return cmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log := zerolog.New(console).Level(lvl).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

func logger() zerolog.Logger {
	if zerolog.DefaultContextLogger != nil {
		return *zerolog.DefaultContextLogger
	}
	return zerolog.Nop()
}

// loadScenario resolves the --scenario flag: the file when given, defaults
// otherwise.
func loadScenario(cmd *cobra.Command) (scenario.Scenario, error) {
	path, err := cmd.Flags().GetString("scenario")
	if err != nil {
		return scenario.Default(), err
	}
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}
