package main

import (
	"context"
	"fmt"

	"github.com/Varun5711/todolist/internal/auth"
	"github.com/Varun5711/todolist/internal/config"
	"github.com/Varun5711/todolist/internal/database"
	"github.com/Varun5711/todolist/internal/lock"
	"github.com/Varun5711/todolist/internal/logger"
	redisclient "github.com/Varun5711/todolist/internal/redis"
	"github.com/Varun5711/todolist/internal/storage"
)

// app holds the process-wide resources every command builds on.
type app struct {
	cfg   *config.Config
	db    *database.DBManager
	redis *redisclient.Client
	users storage.UserStore
	todos storage.TodoStore
	log   *logger.Logger
}

func newApp(ctx context.Context, log *logger.Logger) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage; data is lost on exit")
		a.users = storage.NewMemoryUserStorage()
		a.todos = storage.NewMemoryTodoStorage()
	case config.StorageDriverPostgres:
		db, err := database.NewDBManager(ctx, database.Config{
			PrimaryDSN:      cfg.Database.PrimaryDSN,
			ReplicaDSNs:     cfg.Database.ReplicaDSNs,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Connected to database (%d replicas)", len(cfg.Database.ReplicaDSNs))
		a.db = db
		a.users = storage.NewUserStorage(db)
		a.todos = storage.NewTodoStorage(db)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisclient.NewClient(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		a.redis = rdb
	}

	return a, nil
}

func (a *app) jwtManager() *auth.JWTManager {
	secret := a.cfg.Auth.JWTSecret
	if secret == "" {
		secret = config.DefaultJWTSecret
		a.log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}
	return auth.NewJWTManager(secret, a.cfg.Auth.TokenDuration)
}

func (a *app) hasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(a.cfg.Auth.BcryptCost)
}

func (a *app) migrate(ctx context.Context) error {
	if a.db == nil {
		return fmt.Errorf("migrations need STORAGE_DRIVER=%s", config.StorageDriverPostgres)
	}

	var locker database.Locker
	if a.redis != nil {
		locker = lock.NewDistributedLock(a.redis.Redis(), lock.MigrationsKey, a.cfg.Database.MigrationLock)
	}

	sqlDB := a.db.SQLDB()
	defer sqlDB.Close()

	return database.RunMigrations(ctx, sqlDB, locker, a.log.Named("migrate"))
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
