package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/udmf/handle"
	"github.com/wippyai/udmf/native"
	"github.com/wippyai/udmf/utd"
)

// Global flag values.
var (
	flagConfig   string
	flagLogLevel string
	flagJSON     bool
)

// lib is opened by PersistentPreRunE for every subcommand.
var (
	lib    *native.Library
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "udmfctl",
	Short: "Inspect the uniform data type catalog",
	Long: `udmfctl queries the type catalog of the unified data library:
well-known type identifiers, their descriptors, reverse lookups by
extension or MIME type, and the belongs-to hierarchy.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openLibrary,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./udmfctl.yaml or $XDG_CONFIG_HOME/udmf/udmfctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(belongsCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(browseCmd)
}

func openLibrary(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig, cmd)
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	native.SetLogger(logger)
	handle.SetLogger(logger)
	utd.SetLogger(logger)

	var catalog []byte
	if cfg.Catalog != "" {
		catalog, err = os.ReadFile(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
	}

	lib, err = native.NewWithConfig(cmd.Context(), &native.Config{
		Logger:           logger,
		Catalog:          catalog,
		MemoryLimitPages: cfg.MemoryLimitPages,
	})
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	logger.Debug("library opened",
		zap.Stringer("id", lib.ID()),
		zap.Int("types", lib.Catalog().Len()))
	return nil
}

// closeLibrary runs after every command, including failed ones.
func closeLibrary(ctx context.Context) error {
	if lib == nil {
		return nil
	}
	err := lib.Close(ctx)
	lib = nil
	_ = logger.Sync()
	return err
}
