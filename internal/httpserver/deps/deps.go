package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marksd/marks/internal/logger"
	"github.com/marksd/marks/internal/store"
	boltstore "github.com/marksd/marks/internal/store/bolt"
	redisstore "github.com/marksd/marks/internal/store/redis"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time     // for testing, defaults to time.Now
	Store         *store.BookmarkStore // in-memory bookmark store (source of truth)
	Bolt          *boltstore.Store     // durable store, nil in tests
	Ranking       *redisstore.Store    // visit ranking, nil when Redis is disabled
	RedisClient   *redis.Client        // raw client for health checks, nil when disabled
	BookmarkFile  string               // path of the YAML import file, empty = import disabled
	ImportTrigger chan struct{}        // channel to trigger a manual import, nil if disabled
	LastImport    func() time.Time     // last successful import, nil if disabled
}
