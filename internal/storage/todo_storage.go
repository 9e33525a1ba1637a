package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Varun5711/todolist/internal/database"
	"github.com/Varun5711/todolist/internal/models"
	"github.com/jackc/pgx/v5"
)

type TodoStorage struct {
	db *database.DBManager
}

func NewTodoStorage(db *database.DBManager) *TodoStorage {
	return &TodoStorage{
		db: db,
	}
}

const todoColumns = `id, user_id, title, content, created_at, updated_at`

// buildTodoListQuery returns the list query for filter and its arguments.
// The keyword match is a case-sensitive substring test on the title.
func buildTodoListQuery(filter models.TodoFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Keyword != "" {
		args = append(args, filter.Keyword)
		conds = append(conds, "strpos(title, $"+strconv.Itoa(len(args))+") > 0")
	}

	query := "SELECT " + todoColumns + " FROM todos"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	return query, args
}

func (s *TodoStorage) ListTodos(ctx context.Context, filter models.TodoFilter) ([]*models.Todo, error) {
	query, args := buildTodoListQuery(filter)

	rows, err := s.db.Read().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Title,
			&todo.Content,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		todos = append(todos, &todo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return todos, nil
}

// GetTodo reads from the primary since it guards update and delete.
func (s *TodoStorage) GetTodo(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = $1 AND ($2::bigint = 0 OR user_id = $2)
	`

	return scanTodo(s.db.Write().QueryRow(ctx, query, id, ownerID))
}

func (s *TodoStorage) CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + todoColumns

	created, err := scanTodo(s.db.Write().QueryRow(ctx, query, todo.UserID, todo.Title, todo.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return created, nil
}

func (s *TodoStorage) UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		UPDATE todos
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3 AND ($4::bigint = 0 OR user_id = $4)
		RETURNING ` + todoColumns

	updated, err := scanTodo(s.db.Write().QueryRow(ctx, query, todo.Title, todo.Content, todo.ID, todo.UserID))
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return updated, nil
}

func (s *TodoStorage) DeleteTodo(ctx context.Context, id, ownerID int64) (bool, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND ($2::bigint = 0 OR user_id = $2)
	`

	cmdTag, err := s.db.Write().Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func scanTodo(row pgx.Row) (*models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Content,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan todo: %w", err)
	}

	return &todo, nil
}
