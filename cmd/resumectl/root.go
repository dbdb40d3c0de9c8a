package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
)

const app = "resumectl"

var (
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "resumectl analyses résumés and ranks them against a job description",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")
}

// setup loads the configuration and builds a logger. Command line flags win
// over LOG_DEBUG and LOG_JSON.
func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if debug {
		cfg.Log.Debug = true
	}
	if jsonLog {
		cfg.Log.JSON = true
	}

	// stdout carries the command output
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug, "stderr")
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}
