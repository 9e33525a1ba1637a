package models

import "time"

type Todo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TodoFilter narrows a todo listing. Zero values mean "no filter".
type TodoFilter struct {
	UserID  int64
	Keyword string
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}
