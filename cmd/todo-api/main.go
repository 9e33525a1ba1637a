package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Varun5711/todolist/internal/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New("todo-api")
	log.SetStdLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "todo-api",
		Usage: "multi-user todo list REST API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: func(c *cli.Context) error { return serve(c.Context, log) },
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations",
				Action: func(c *cli.Context) error { return migrate(c.Context, log) },
			},
			{
				Name:   "seed",
				Usage:  "load demo users and todos",
				Action: func(c *cli.Context) error { return seedData(c.Context, log) },
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal("%v", err)
	}
}
