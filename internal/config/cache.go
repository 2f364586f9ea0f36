package config

import "time"

// HistoryCacheConfig controls the Redis read cache in front of the
// color-history table.  The cache is write-through: every save refreshes
// the cached entry, so the TTL only bounds staleness after out-of-band
// database changes.
type HistoryCacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadHistoryCacheConfig reads HISTORY_CACHE_* environment variables with
// defaults suitable for the small per-user payloads involved.
func LoadHistoryCacheConfig() HistoryCacheConfig {
    cfg := HistoryCacheConfig{
        Enabled: envBool("HISTORY_CACHE_ENABLED", true),
        TTL:     envDur("HISTORY_CACHE_TTL", 5*time.Minute),
        Prefix:  getenv("HISTORY_CACHE_PREFIX", "history"),
    }
    if cfg.TTL <= 0 {
        cfg.TTL = time.Minute
    }
    return cfg
}
