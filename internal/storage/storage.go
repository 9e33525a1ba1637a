package storage

import (
	"context"
	"errors"

	"github.com/Varun5711/todolist/internal/models"
)

var ErrDuplicateEmail = errors.New("email already in use")

// UserStore holds accounts. Lookups only see users that are not soft-deleted
// and return (nil, nil) when nothing matches.
type UserStore interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

// TodoStore holds todo items. An ownerID of 0 disables owner scoping.
// Get and Update return (nil, nil) when no row matches; Delete reports
// whether a row was removed.
type TodoStore interface {
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id, ownerID int64) (*models.Todo, error)
	CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id, ownerID int64) (bool, error)
}

var (
	_ UserStore = (*UserStorage)(nil)
	_ UserStore = (*MemoryUserStorage)(nil)
	_ TodoStore = (*TodoStorage)(nil)
	_ TodoStore = (*MemoryTodoStorage)(nil)
)
