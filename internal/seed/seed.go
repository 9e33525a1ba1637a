// Package seed loads demo accounts and todos into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/Varun5711/todolist/internal/auth"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/models"
	"github.com/Varun5711/todolist/internal/storage"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password"

var demoUsers = []models.CreateUserRequest{
	{Name: "takeshi", Email: "takeshi@gmail.com"},
	{Name: "hanako", Email: "hanako@gmail.com"},
}

var demoTodos = []models.Todo{
	{Title: "Todo 1", Content: "This is the first todo."},
	{Title: "Todo 2", Content: "This is the second todo."},
	{Title: "Todo 3", Content: "This is the third todo."},
}

// Run creates the demo users and gives the first one the demo todos. Users
// that already exist are left alone, and todos are only added for a first
// user created by this run, so running it twice is harmless.
func Run(ctx context.Context, users storage.UserStore, todos storage.TodoStore, hasher *auth.PasswordHasher, log *logger.Logger) error {
	passwordHash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return err
	}

	var owner *models.User
	for i, demo := range demoUsers {
		existing, err := users.GetUserByEmail(ctx, demo.Email)
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", demo.Email, err)
		}
		if existing != nil {
			log.Info("User %s already exists, skipping", demo.Email)
			continue
		}

		user, err := users.CreateUser(ctx, &models.CreateUserRequest{
			Name:         demo.Name,
			Email:        demo.Email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", demo.Email, err)
		}
		log.Info("Seeded user %s (id=%d)", user.Email, user.ID)

		if i == 0 {
			owner = user
		}
	}

	if owner == nil {
		return nil
	}

	for _, demo := range demoTodos {
		todo := demo
		todo.UserID = owner.ID
		if _, err := todos.CreateTodo(ctx, &todo); err != nil {
			return fmt.Errorf("failed to seed todo %q: %w", demo.Title, err)
		}
	}
	log.Info("Seeded %d todos for %s", len(demoTodos), owner.Email)

	return nil
}
