package main

import (
	"context"

	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/seed"
)

func migrate(ctx context.Context, log *logger.Logger) error {
	a, err := newApp(ctx, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.migrate(ctx)
}

func seedData(ctx context.Context, log *logger.Logger) error {
	a, err := newApp(ctx, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return seed.Run(ctx, a.users, a.todos, a.hasher(), log.Named("seed"))
}
