package main

import (
	"fmt"
	"os"

	"github.com/Varun5711/todolist/cmd/tui/client"
	"github.com/Varun5711/todolist/cmd/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "todo-tui",
		Usage: "terminal client for the todo API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "base URL of the todo API, including its prefix",
				Value:   "http://localhost:3000/api",
				EnvVars: []string{"TODO_API_URL"},
			},
		},
		Action: func(c *cli.Context) error {
			p := tea.NewProgram(
				ui.NewModel(client.NewClient(c.String("api-url"))),
				tea.WithAltScreen(),
			)
			_, err := p.Run()
			return err
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
