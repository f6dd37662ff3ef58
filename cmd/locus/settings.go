package main

import (
	"log/slog"

	"github.com/uncrr/locus/internal/configuration"
)

const (
	// SettingHistoryFile is the configuration key naming the visit history file.
	SettingHistoryFile = "HISTORY_FILE"

	// SettingHistoryLimit is the configuration key capping the visit history size.
	SettingHistoryLimit = "HISTORY_LIMIT"

	// SettingMaxWorkers is the configuration key bounding existence probe concurrency.
	SettingMaxWorkers = "MAX_WORKERS"

	defaultHistoryLimit = 500
	defaultMaxWorkers   = 4
)

// Settings holds the resolved application configuration.
type Settings struct {
	HistoryFile  string
	HistoryLimit int
	MaxWorkers   int
}

// resolveSettings reads the given environment configuration file and maps its
// keys over the built-in defaults. An unreadable file is logged and skipped,
// leaving the defaults in place.
func resolveSettings(configHandler *configuration.Handler, envFile string) *Settings {
	settings := &Settings{
		HistoryLimit: defaultHistoryLimit,
		MaxWorkers:   defaultMaxWorkers,
	}

	if envFile == "" {
		return settings
	}

	configMap, err := configHandler.ReadGeneric(envFile)
	if err != nil {
		slog.Warn("Failed to read the configuration file.",
			"path", envFile,
			"err", err,
		)

		return settings
	}

	if value := configHandler.MapKeyToString(configMap, SettingHistoryFile); value != "" {
		settings.HistoryFile = value
	}

	if value := configHandler.MapKeyToInt(configMap, SettingHistoryLimit); value >= 0 {
		settings.HistoryLimit = value
	}

	if value := configHandler.MapKeyToInt(configMap, SettingMaxWorkers); value > 0 {
		settings.MaxWorkers = value
	}

	return settings
}
