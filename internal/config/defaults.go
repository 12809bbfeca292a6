package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultThreshold  = 0.90
	defaultSampleSize = 1
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

func defaultCachePath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "fuzzygrouper", "normalized.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/fuzzygrouper/normalized.db"
	}
	return filepath.Join(home, ".cache", "fuzzygrouper", "normalized.db")
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Grouping: Grouping{
			Threshold:  defaultThreshold,
			SampleSize: defaultSampleSize,
		},
		Cache: Cache{
			Path: defaultCachePath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
