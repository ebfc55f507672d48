package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/consoleprogress/internal/config"
	"github.com/harrison/consoleprogress/internal/logger"
)

// loadConfig loads the config file named by --config, or the default file in
// the working directory, and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}

	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr, nil, nil)
	return cfg, nil
}

// newLogger builds the console logger, adding a file logger when a log
// directory is configured. The returned close function releases the file.
func newLogger(cfg *config.Config, out io.Writer) (logger.Logger, func() error, error) {
	consoleLog := logger.NewConsoleLogger(out, cfg.LogLevel)
	if cfg.LogDir == "" {
		return consoleLog, func() error { return nil }, nil
	}

	fileLog, err := logger.NewFileLoggerWithLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	consoleLog.LogDebug(fmt.Sprintf("Logging run %s to %s", fileLog.RunID(), fileLog.RunFile()))

	return logger.NewMultiLogger(consoleLog, fileLog), fileLog.Close, nil
}
