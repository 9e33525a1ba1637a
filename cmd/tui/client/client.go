package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Todo mirrors the API's todo representation.
type Todo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the signed-in user as read from the token.
type Session struct {
	Token  string
	UserID int64
	Email  string
}

// APIError is a non-2xx response.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("request failed: %s", http.StatusText(e.Status))
	}
	return strings.Join(e.Messages, "; ")
}

// Client talks to the todo REST API. It is not safe for concurrent SetSession
// calls; the TUI only sets the session from its update loop.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetSession(s Session) {
	c.session = s
}

func (c *Client) Session() Session {
	return c.session
}

func (c *Client) SignUp(username, email, password string) (Session, error) {
	return c.authenticate("/auth/signup", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func (c *Client) SignIn(email, password string) (Session, error) {
	return c.authenticate("/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) authenticate(path string, body map[string]string) (Session, error) {
	var token string
	if err := c.do(http.MethodPost, path, body, &token); err != nil {
		return Session{}, err
	}
	return parseSession(token)
}

// parseSession reads the identity claims without verifying the signature;
// only the server holds the secret.
func parseSession(token string) (Session, error) {
	var claims struct {
		UserID int64  `json:"id"`
		Email  string `json:"email"`
		jwt.RegisteredClaims
	}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Session{}, fmt.Errorf("unexpected token from server: %w", err)
	}
	return Session{Token: token, UserID: claims.UserID, Email: claims.Email}, nil
}

func (c *Client) ListTodos(keyword string) ([]Todo, error) {
	path := "/todos"
	if keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}

	var todos []Todo
	if err := c.do(http.MethodGet, path, nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) GetTodo(id int64) (*Todo, error) {
	var todo Todo
	if err := c.do(http.MethodGet, todoPath(id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) CreateTodo(title, content string) (*Todo, error) {
	var todo Todo
	body := map[string]string{"title": title, "content": content}
	if err := c.do(http.MethodPost, "/todos", body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) UpdateTodo(id int64, title, content string) (*Todo, error) {
	var todo Todo
	body := map[string]string{"title": title, "content": content}
	if err := c.do(http.MethodPut, todoPath(id), body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) DeleteTodo(id int64) error {
	return c.do(http.MethodDelete, todoPath(id), nil, nil)
}

func todoPath(id int64) string {
	return "/todos/" + strconv.FormatInt(id, 10)
}

// do sends a JSON request. A *string out receives the raw body; any other
// non-nil out is JSON-decoded.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Errors []string `json:"errors"`
		}
		if json.Unmarshal(raw, &errBody) == nil {
			apiErr.Messages = errBody.Errors
		}
		return apiErr
	}

	switch dst := out.(type) {
	case nil:
		return nil
	case *string:
		*dst = string(raw)
		return nil
	default:
		return json.Unmarshal(raw, dst)
	}
}
