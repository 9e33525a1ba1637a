package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/Varun5711/todolist/internal/database"
	"github.com/Varun5711/todolist/internal/handlers"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/middleware"
	"github.com/Varun5711/todolist/internal/service"
)

func serve(ctx context.Context, log *logger.Logger) error {
	a, err := newApp(ctx, log)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg

	if cfg.Database.AutoMigrate && a.db != nil {
		err := a.migrate(ctx)
		switch {
		case errors.Is(err, database.ErrMigrationLocked):
			log.Warn("Skipping auto-migrate: %v", err)
		case err != nil:
			return err
		}
	}

	jwtManager := a.jwtManager()
	authService := service.NewAuthService(a.users, a.hasher(), jwtManager, log.Named("auth"))
	todoService := service.NewTodoService(a.todos)

	var health handlers.Pinger
	if a.db != nil {
		health = a.db
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		if a.redis == nil {
			log.Warn("RATE_LIMIT_REQUESTS set but REDIS_ADDR is empty; rate limiting disabled")
		} else {
			limiter = middleware.NewRateLimiter(a.redis.Redis(), cfg.RateLimit.Requests, cfg.RateLimit.Window, log.Named("ratelimit"))
			log.Info("Rate limiting %d requests per %s", cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		APIPrefix:      cfg.Server.APIPrefix,
		FrontendOrigin: cfg.Server.FrontendBaseURL,
		Auth:           handlers.NewAuthHandler(authService, log.Named("auth")),
		Todos:          handlers.NewTodoHandler(todoService, log.Named("todos")),
		Health:         handlers.NewHealthHandler(health, log.Named("health")),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtManager, log.Named("auth")),
		RateLimiter:    limiter,
		Log:            log.Named("http"),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening on port %s (API prefix %s)", cfg.Server.Port, cfg.Server.APIPrefix)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if a.db != nil {
		log.Debug("Database pool stats: %v", a.db.Stats())
	}
	if a.redis != nil {
		log.Debug("Redis pool stats: %v", a.redis.Stats())
	}
	log.Info("Server stopped")
	return nil
}
