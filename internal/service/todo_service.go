package service

import (
	"context"

	"github.com/Varun5711/todolist/internal/apperror"
	"github.com/Varun5711/todolist/internal/models"
	"github.com/Varun5711/todolist/internal/storage"
)

const MsgTodoNotFound = "Todo not found"

// TodoService implements todo CRUD. An ownerID of 0 means the caller has no
// identity and no ownership scope is applied; the auth middleware keeps that
// from happening on the HTTP surface.
type TodoService struct {
	todos storage.TodoStore
}

func NewTodoService(todos storage.TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) List(ctx context.Context, ownerID int64, keyword string) ([]*models.Todo, error) {
	todos, err := s.todos.ListTodos(ctx, models.TodoFilter{UserID: ownerID, Keyword: keyword})
	if err != nil {
		return nil, apperror.NewInternal("failed to list todos", err)
	}
	return todos, nil
}

// Get does not distinguish a missing todo from one owned by someone else.
func (s *TodoService) Get(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	todo, err := s.todos.GetTodo(ctx, id, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to get todo", err)
	}
	if todo == nil {
		return nil, apperror.NewNotFound(MsgTodoNotFound)
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, title, content string) (*models.Todo, error) {
	if ownerID == 0 {
		return nil, apperror.NewBadRequest(MsgUserNotFound)
	}

	todo, err := s.todos.CreateTodo(ctx, &models.Todo{
		UserID:  ownerID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to create todo", err)
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, id, ownerID int64, title, content string) (*models.Todo, error) {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return nil, err
	}

	todo, err := s.todos.UpdateTodo(ctx, &models.Todo{
		ID:      id,
		UserID:  ownerID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to update todo", err)
	}
	// deleted between the look-up and the write
	if todo == nil {
		return nil, apperror.NewNotFound(MsgTodoNotFound)
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id, ownerID int64) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}

	deleted, err := s.todos.DeleteTodo(ctx, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete todo", err)
	}
	if !deleted {
		return apperror.NewNotFound(MsgTodoNotFound)
	}
	return nil
}
