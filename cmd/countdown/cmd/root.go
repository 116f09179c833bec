package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/countdown/internal/config"
	"github.com/oshokin/countdown/internal/service/console"
	"github.com/oshokin/countdown/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command for running a countdown.
	rootCmd = &cobra.Command{
		Use:   "countdown [seconds]",
		Short: "Run an interactive MM:SS countdown timer.",
		Long: `Runs a countdown timer in the terminal.

Set a duration in seconds, then start, pause, resume and reset the count with
commands typed on stdin (type "help" for the list). The remaining time is
printed as MM:SS after every change.

The optional argument sets the initial duration. When stdin ends while the
countdown is running, the program waits for it to reach 00:00.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var duration string
			if len(args) > 0 {
				duration = args[0]
			}

			options := &console.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
				Duration:   duration,
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
			}

			return console.Run(ctx, options)
		},
	}
)

// Execute runs the countdown CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
}
