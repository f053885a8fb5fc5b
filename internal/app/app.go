package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/marksd/marks/internal/config"
	"github.com/marksd/marks/internal/domain"
	"github.com/marksd/marks/internal/httpserver"
	"github.com/marksd/marks/internal/httpserver/deps"
	"github.com/marksd/marks/internal/logger"
	"github.com/marksd/marks/internal/redis"
	"github.com/marksd/marks/internal/scheduler"
	"github.com/marksd/marks/internal/store"
	boltstore "github.com/marksd/marks/internal/store/bolt"
	redisstore "github.com/marksd/marks/internal/store/redis"
	"github.com/marksd/marks/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	bolt        *boltstore.Store
	marks       *store.BookmarkStore
	importer    *scheduler.Importer
	janitor     *scheduler.Janitor
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the durable store early - fail fast if the data file is unusable
	bolt, err := boltstore.Open(cfg.DataFile)
	if err != nil {
		loggerClient.Errorf("Failed to open data file %s: %v", cfg.DataFile, err)
		os.Exit(1)
	}

	// Build the in-memory store and restore persisted bookmarks
	matcher := domain.Matcher{
		Fields:        domain.ParseMatchFields(cfg.MatchFields),
		CaseSensitive: cfg.MatchCaseSensitive,
	}
	marks := store.New(matcher)

	persisted, lastID, err := bolt.LoadAll()
	if err != nil {
		loggerClient.Errorf("Failed to load persisted bookmarks: %v", err)
		os.Exit(1)
	}
	marks.Restore(persisted, lastID)
	loggerClient.Info("restored bookmarks from disk",
		logger.Int("count", len(persisted)),
		logger.Uint64("last_id", lastID))

	// Optional Redis for the visit ranking
	var (
		redisClient *goredis.Client
		ranking     *redisstore.Store
		janitor     *scheduler.Janitor
	)
	if cfg.RankingEnabled() {
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		ranking = redisstore.NewStore(redisClient)
		janitor = scheduler.NewJanitor(marks, ranking, loggerClient, cfg.JanitorInterval)
	} else {
		loggerClient.Info("redis not configured, visit ranking disabled")
	}

	// Optional bookmark file importer
	var (
		importer      *scheduler.Importer
		importTrigger chan struct{}
		lastImport    func() time.Time
	)
	if cfg.BookmarkFile != "" {
		loggerClient.Info("bookmark file configured, initializing importer",
			logger.String("file", cfg.BookmarkFile))
		importTrigger = make(chan struct{}, 1)
		importer = scheduler.NewImporter(
			cfg.BookmarkFile,
			marks,
			bolt,
			loggerClient,
			cfg.ImportInterval,
			importTrigger,
		)
		lastImport = importer.LastImport
	} else {
		loggerClient.Info("bookmark file not configured, import disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Store:         marks,
		Bolt:          bolt,
		Ranking:       ranking,
		RedisClient:   redisClient,
		BookmarkFile:  cfg.BookmarkFile,
		ImportTrigger: importTrigger,
		LastImport:    lastImport,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		bolt:        bolt,
		marks:       marks,
		importer:    importer,
		janitor:     janitor,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting marks %s on %s", version.Version, a.cfg.ListenAddr)
	a.logger.Infof("marks %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start importer (first import runs synchronously)
	if a.importer != nil {
		if err := a.importer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start bookmark importer: %w", err)
		}
		a.logger.Info("bookmark importer started",
			logger.Duration("interval", a.cfg.ImportInterval))
	}

	// Start ranking janitor
	if a.janitor != nil {
		if err := a.janitor.Start(ctx); err != nil {
			return fmt.Errorf("failed to start ranking janitor: %w", err)
		}
		a.logger.Info("ranking janitor started",
			logger.Duration("interval", a.cfg.JanitorInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.importer != nil {
		a.importer.Stop()
	}
	if a.janitor != nil {
		a.janitor.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	if err := a.bolt.Close(); err != nil {
		a.logger.Warnf("failed to close data file: %v", err)
	}

	a.logger.Info("marks stopped cleanly")
	return nil
}
