package config

import (
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	// MessageOverrideDir points at a directory of YAML files that
	// override the embedded message catalog.
	MessageOverrideDir string

	MaxConcurrentGames int
	HistoryLimit       int
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		MaxConcurrentGames: 64,
		HistoryLimit:       10,
	}

	cfg.MessageOverrideDir = strings.TrimSpace(os.Getenv("CHESS_MSG_DIR"))

	if v := strings.TrimSpace(os.Getenv("CHESS_MAX_GAMES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConcurrentGames = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_HISTORY_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}

	return cfg, nil
}
