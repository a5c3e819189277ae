package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Settings holds process-level configuration for the channelmap binary,
// read from the environment. Command-line flags override these.
type Settings struct {
	Log       LogSettings
	Export    ExportSettings
	Cache     CacheSettings
	Sequencer SequencerSettings
	Watch     WatchSettings
}

type LogSettings struct {
	Format string // "json" | "text"
	Level  string // "debug" | "info" | "warn" | "error"
}

type ExportSettings struct {
	Dir     string
	Formats string // comma separated: "csv,parquet"
}

type CacheSettings struct {
	Backend string // "memory" | "sqlite"
	DSN     string // sqlite file path
}

type SequencerSettings struct {
	Host string
	Port int
}

type WatchSettings struct {
	Interval    time.Duration
	MetricsAddr string
}

// MustLoad reads Settings from the environment, applying defaults for
// anything unset.
func MustLoad() Settings {
	log.Println("[config] loading settings")

	return Settings{
		Log: LogSettings{
			Format: getenvDefault("CHANNELMAP_LOG_FORMAT", "text"),
			Level:  getenvDefault("CHANNELMAP_LOG_LEVEL", "info"),
		},
		Export: ExportSettings{
			Dir:     getenvDefault("CHANNELMAP_EXPORT_DIR", "."),
			Formats: getenvDefault("CHANNELMAP_EXPORT_FORMATS", "csv"),
		},
		Cache: CacheSettings{
			Backend: getenvDefault("CHANNELMAP_CACHE", "memory"),
			DSN:     getenvDefault("CHANNELMAP_CACHE_DSN", ""),
		},
		Sequencer: SequencerSettings{
			Host: getenvDefault("CHANNELMAP_SEQUENCER_HOST", ""),
			Port: parseInt(getenvDefault("CHANNELMAP_SEQUENCER_PORT", "9501")),
		},
		Watch: WatchSettings{
			Interval:    parseDuration(getenvDefault("CHANNELMAP_WATCH_INTERVAL", "5s")),
			MetricsAddr: getenvDefault("CHANNELMAP_METRICS_ADDR", ""),
		},
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("[config] invalid integer %q, using 0", s)
		return 0
	}
	return n
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("[config] invalid duration %q, using 5s", s)
		return 5 * time.Second
	}
	return d
}
