package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataFile        string        // path to the bbolt database file
	BookmarkFile    string        // path to a YAML bookmark file to import (optional, empty = import disabled)
	ImportInterval  time.Duration // interval to re-import the bookmark file (default: 24h)
	JanitorInterval time.Duration // interval to prune stale ranking entries (default: 24h)

	// Search behavior (title/url matching)
	MatchFields        []string // which fields search inspects ("title", "url")
	MatchCaseSensitive bool     // false => case-insensitive substring match

	// Redis (optional, empty addr = ranking disabled)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDialTimeout    time.Duration
	RedisReadTimeout    time.Duration
	RedisWriteTimeout   time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt

	AllowedHosts []string // optional, restrict access to specific Host headers
	RateBurst    int      // rate limit burst per client IP
	RateRefill   int      // rate limit refill per client IP per minute
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	return &Config{
		// Server settings
		ListenAddr:      getenv("MARKS_LISTEN_ADDR", ":8080"),
		ShutdownTimeout: mustDuration("MARKS_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MARKS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MARKS_PRETTY_LOG", true),

		// Storage & import
		DataFile:        getenv("MARKS_DATA_FILE", "marks.db"),
		BookmarkFile:    getenv("MARKS_BOOKMARK_FILE", ""), // Optional, empty = import disabled
		ImportInterval:  mustDuration("MARKS_IMPORT_INTERVAL", 24*time.Hour),
		JanitorInterval: mustDuration("MARKS_JANITOR_INTERVAL", 24*time.Hour),

		// Search behavior
		MatchFields:        splitAndTrim(getenv("MARKS_MATCH_FIELDS", "title,url")),
		MatchCaseSensitive: mustBool("MARKS_MATCH_CASE_SENSITIVE", false),

		// Redis settings (optional)
		RedisAddr:           getenv("MARKS_REDIS_ADDR", ""),
		RedisUser:           getenv("MARKS_REDIS_USERNAME", ""),
		RedisPassword:       getenv("MARKS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("MARKS_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("MARKS_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("MARKS_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("MARKS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("MARKS_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("MARKS_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("MARKS_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("MARKS_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("MARKS_REDIS_PING_TIMEOUT", 5*time.Second),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("MARKS_ALLOWED_HOSTS", "")),
		RateBurst:    getenvInt("MARKS_RATE_BURST", 30),
		RateRefill:   getenvInt("MARKS_RATE_REFILL_PER_MIN", 60),
		TrustProxy:   mustBool("MARKS_TRUST_PROXY", false),
	}
}

// RankingEnabled reports whether the Redis-backed ranking is configured.
func (c *Config) RankingEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
