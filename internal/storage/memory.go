package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Varun5711/todolist/internal/models"
)

// MemoryUserStorage is a process-local UserStore used by tests and by
// STORAGE_DRIVER=memory.
type MemoryUserStorage struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{
		users: make(map[int64]*models.User),
	}
}

func (s *MemoryUserStorage) CreateUser(_ context.Context, req *models.CreateUserRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findActiveByEmail(req.Email) != nil {
		return nil, ErrDuplicateEmail
	}

	s.nextID++
	now := time.Now()
	user := &models.User{
		ID:           s.nextID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user

	copied := *user
	return &copied, nil
}

func (s *MemoryUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.findActiveByEmail(email)
	if user == nil {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

func (s *MemoryUserStorage) GetUserByID(_ context.Context, userID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists || user.DeletedAt != nil {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

// SoftDelete marks a user deleted, freeing the email for a new signup.
func (s *MemoryUserStorage) SoftDelete(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[userID]
	if !exists || user.DeletedAt != nil {
		return false
	}

	now := time.Now()
	user.DeletedAt = &now
	return true
}

func (s *MemoryUserStorage) findActiveByEmail(email string) *models.User {
	for _, user := range s.users {
		if user.Email == email && user.DeletedAt == nil {
			return user
		}
	}
	return nil
}

// MemoryTodoStorage is a process-local TodoStore.
type MemoryTodoStorage struct {
	mu     sync.RWMutex
	nextID int64
	todos  map[int64]*models.Todo
}

func NewMemoryTodoStorage() *MemoryTodoStorage {
	return &MemoryTodoStorage{
		todos: make(map[int64]*models.Todo),
	}
}

func (s *MemoryTodoStorage) ListTodos(_ context.Context, filter models.TodoFilter) ([]*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]*models.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		if filter.UserID != 0 && todo.UserID != filter.UserID {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(todo.Title, filter.Keyword) {
			continue
		}
		copied := *todo
		todos = append(todos, &copied)
	}

	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })
	return todos, nil
}

func (s *MemoryTodoStorage) GetTodo(_ context.Context, id, ownerID int64) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo := s.lookup(id, ownerID)
	if todo == nil {
		return nil, nil
	}

	copied := *todo
	return &copied, nil
}

func (s *MemoryTodoStorage) CreateTodo(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now()
	stored := &models.Todo{
		ID:        s.nextID,
		UserID:    todo.UserID,
		Title:     todo.Title,
		Content:   todo.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.todos[stored.ID] = stored

	copied := *stored
	return &copied, nil
}

func (s *MemoryTodoStorage) UpdateTodo(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.lookup(todo.ID, todo.UserID)
	if stored == nil {
		return nil, nil
	}

	stored.Title = todo.Title
	stored.Content = todo.Content
	stored.UpdatedAt = time.Now()

	copied := *stored
	return &copied, nil
}

func (s *MemoryTodoStorage) DeleteTodo(_ context.Context, id, ownerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lookup(id, ownerID) == nil {
		return false, nil
	}

	delete(s.todos, id)
	return true, nil
}

func (s *MemoryTodoStorage) lookup(id, ownerID int64) *models.Todo {
	todo, exists := s.todos[id]
	if !exists {
		return nil
	}
	if ownerID != 0 && todo.UserID != ownerID {
		return nil
	}
	return todo
}
