// Package main provides the CLI entry point for leadsync.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jcanalytics/leadsync-go/internal/config"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync"
	"github.com/jcanalytics/leadsync-go/pkg/leadsync/output"
)

var (
	configPath string
	dataPath   string
	verbose    bool
	pretty     bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leadsync",
		Short: "Distribute and reconcile spreadsheet leads",
		Long: `leadsync keeps a master lead workbook and per-person tracking workbooks
in sync: it distributes leads, reconciles tracking updates back into the
master, promotes leads to coordinators and ingests raw batches.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "leadsync.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newDistributeCmd(),
		newSyncCmd(),
		newPromoteCmd(),
		newIngestCmd(),
		newStructureCmd(),
		newShowCmd(),
		newHistoryCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fail(cmd, err)
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	logger, err = newLogger(cfg.Logging, verbose)
	if err != nil {
		return fail(cmd, fmt.Errorf("failed to initialize logger: %w", err))
	}
	return nil
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func newEngine() *leadsync.Engine {
	return leadsync.New(leadsync.Options{
		Layout: cfg.Layout(),
		Logger: logger,
	})
}

// respond prints result, or a structured failure when err is set.
func respond(cmd *cobra.Command, result interface{}, err error) error {
	if err != nil {
		return fail(cmd, err)
	}
	return output.Write(cmd.OutOrStdout(), output.Success{Success: true, Result: result}, pretty)
}

func fail(cmd *cobra.Command, err error) error {
	kind := leadsync.Kind(err)
	if logger != nil {
		logger.Error("operation failed", zap.String("kind", kind), zap.Error(err))
	}
	_ = output.Write(cmd.OutOrStdout(), output.Failure{Error: kind, Message: err.Error()}, pretty)
	return err
}
