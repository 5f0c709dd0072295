package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jrbrian/drop/internal/infrastructure/config"
)

// loadConfig reads the config at path, or the embedded default when empty
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadDefault()
}

// newLogger builds the process logger. An empty level means info.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "drop",
	})
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// resolveSeed picks a time-based seed when none was given
func resolveSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now().UnixNano()
}

// assetDir returns the --assets override or the configured directory
func assetDir(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.Assets.Dir
}

// setup loads config and logger from the global flags
func setup() (*config.Config, *log.Logger, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Debug.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger, err := newLogger(os.Stderr, level)
	if err != nil {
		return nil, nil, err
	}
	log.SetDefault(logger)
	return cfg, logger, nil
}
