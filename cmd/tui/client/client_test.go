package client

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Varun5711/todolist/internal/auth"
	"github.com/Varun5711/todolist/internal/handlers"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/middleware"
	"github.com/Varun5711/todolist/internal/service"
	"github.com/Varun5711/todolist/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewWithWriter("api", &bytes.Buffer{}, logger.DEBUG)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authService := service.NewAuthService(storage.NewMemoryUserStorage(), auth.NewPasswordHasher(bcrypt.MinCost), jwtManager, log)
	todoService := service.NewTodoService(storage.NewMemoryTodoStorage())

	srv := httptest.NewServer(handlers.NewRouter(handlers.RouterConfig{
		APIPrefix:      "/api",
		Auth:           handlers.NewAuthHandler(authService, log),
		Todos:          handlers.NewTodoHandler(todoService, log),
		Health:         handlers.NewHealthHandler(nil, log),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtManager, log),
		Log:            log,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_SessionFlow(t *testing.T) {
	srv := newAPIServer(t)
	c := NewClient(srv.URL + "/api/")

	session, err := c.SignUp("takeshi", "takeshi@gmail.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.UserID)
	assert.Equal(t, "takeshi@gmail.com", session.Email)
	assert.NotEmpty(t, session.Token)

	again, err := c.SignIn("takeshi@gmail.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, again.UserID)

	_, err = c.ListTodos("")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	c.SetSession(again)

	created, err := c.CreateTodo("Buy milk", "2 litres")
	require.NoError(t, err)
	_, err = c.CreateTodo("Walk dog", "park")
	require.NoError(t, err)

	todos, err := c.ListTodos("milk")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created.ID, todos[0].ID)

	updated, err := c.UpdateTodo(created.ID, "Buy oat milk", "1 litre")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)

	got, err := c.GetTodo(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 litre", got.Content)

	require.NoError(t, c.DeleteTodo(created.ID))

	_, err = c.GetTodo(created.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Todo not found", apiErr.Error())
}

func TestClient_ValidationMessages(t *testing.T) {
	srv := newAPIServer(t)
	c := NewClient(srv.URL + "/api")

	_, err := c.SignUp("u", "not-an-email", "short")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, []string{
		"email must be a valid email address",
		"password must be between 8 and 20 characters",
	}, apiErr.Messages)
}

func TestAPIError_NoMessages(t *testing.T) {
	err := &APIError{Status: http.StatusInternalServerError}
	assert.Equal(t, "request failed: Internal Server Error", err.Error())
}

func TestParseSession_Garbage(t *testing.T) {
	_, err := parseSession("not a token")
	assert.Error(t, err)
}
