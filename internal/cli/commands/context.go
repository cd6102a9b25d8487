package commands

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/timberline-data/timber/internal/config"
)

type configKey struct{}
type loggerKey struct{}

// SetContext stores the loaded configuration and logger on the command's
// context for subcommands to retrieve.
func SetContext(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) {
	ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
	ctx = context.WithValue(ctx, loggerKey{}, logger)
	cmd.SetContext(ctx)
}

// getConfig retrieves the loaded configuration, falling back to defaults
// when the command runs outside the root's PersistentPreRunE (tests).
func getConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		Family:       config.DefaultFamily,
		OutputFormat: config.DefaultOutput,
		Inference: config.InferenceConfig{
			CategoricalThreshold: config.DefaultCategoricalThreshold,
			SampleSize:           config.DefaultSampleSize,
		},
	}
}

// getLogger retrieves the logger, or a discard logger when absent.
func getLogger(cmd *cobra.Command) *slog.Logger {
	if logger, ok := cmd.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}
