package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/rust-site-config/internal/config"
	"github.com/oshokin/rust-site-config/internal/logger"
	"github.com/oshokin/rust-site-config/internal/service/generator"
	"github.com/oshokin/rust-site-config/internal/version"
)

var (
	// configPath to an optional settings YAML file.
	configPath string
	// tiersFile overrides the tier description path.
	tiersFile string
	// outputFile overrides the generated configuration path.
	outputFile string
	// logLevel is the minimum level of diagnostics written to stderr.
	logLevel string

	// rootCmd generates the Jekyll configuration of the platform-support site.
	rootCmd = &cobra.Command{
		Use:   "rust-site-config",
		Short: "Generate the Jekyll configuration of the Rust platform-support site",
		Long: "Fetch the rustup target list and the stable, beta and nightly release manifests, " +
			"merge them with the local tier description and write the Jekyll configuration.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &generator.Options{
				ConfigPath: configPath,
				TiersFile:  tiersFile,
				OutputFile: outputFile,
			}

			return generator.Run(ctx, options)
		},
	}
)

// Execute runs the rust-site-config CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.ErrorKV(context.Background(), "Generation failed", "error", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to an optional settings file")
	flags.StringVar(&tiersFile, "tiers", "", "tier description to read (default "+config.DefaultTiersFilename+")")
	flags.StringVarP(&outputFile, "output", "o", "", "configuration file to write (default "+config.DefaultOutputFilename+")")
	flags.StringVar(&logLevel, "log-level", "info", "diagnostics level: debug, info, warn or error")
}
