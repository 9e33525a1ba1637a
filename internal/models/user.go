package models

import "time"

// User is an account. The password hash never leaves the server.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

type CreateUserRequest struct {
	Name         string
	Email        string
	PasswordHash string
}
