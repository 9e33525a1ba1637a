package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Varun5711/todolist/internal/auth"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/middleware"
	"github.com/Varun5711/todolist/internal/models"
	"github.com/Varun5711/todolist/internal/service"
	"github.com/Varun5711/todolist/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	handler    http.Handler
	users      *storage.MemoryUserStorage
	jwtManager *auth.JWTManager
}

func newTestServer(t *testing.T, todos storage.TodoStore, db Pinger) *testServer {
	t.Helper()

	log := logger.NewWithWriter("test", &bytes.Buffer{}, logger.DEBUG)
	users := storage.NewMemoryUserStorage()
	if todos == nil {
		todos = storage.NewMemoryTodoStorage()
	}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	authService := service.NewAuthService(users, auth.NewPasswordHasher(bcrypt.MinCost), jwtManager, log)
	todoService := service.NewTodoService(todos)

	handler := NewRouter(RouterConfig{
		APIPrefix:      "/api",
		FrontendOrigin: "http://localhost:5173",
		Auth:           NewAuthHandler(authService, log),
		Todos:          NewTodoHandler(todoService, log),
		Health:         NewHealthHandler(db, log),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtManager, log),
		Log:            log,
	})

	return &testServer{handler: handler, users: users, jwtManager: jwtManager}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) signUp(t *testing.T, username, email string) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/signup", "",
		`{"username":"`+username+`","email":"`+email+`","password":"password1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return rec.Body.String()
}

func (s *testServer) createTodo(t *testing.T, token, title string) models.Todo {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/todos", token, `{"title":"`+title+`","content":"content"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var todo models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
	return todo
}

func errorMessages(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Errors)
	return body.Errors
}

func TestSignUp_CreatesUserAndReturnsToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	token := s.signUp(t, "takeshi", "takeshi@gmail.com")

	claims, err := s.jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "takeshi@gmail.com", claims.Email)

	user, err := s.users.GetUserByEmail(context.Background(), "takeshi@gmail.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, claims.UserID, user.ID)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.signUp(t, "takeshi", "dup@gmail.com")

	rec := s.do(http.MethodPost, "/api/auth/signup", "", `{"username":"other","email":"dup@gmail.com","password":"password2"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, []string{"Other user already use this email"}, errorMessages(t, rec))

	user, err := s.users.GetUserByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignUp_Validation(t *testing.T) {
	s := newTestServer(t, nil, nil)

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "seven character password",
			body: `{"username":"u","email":"a@b.co","password":"abcdefg"}`,
			want: []string{"password must be between 8 and 20 characters"},
		},
		{
			name: "non alphanumeric password",
			body: `{"username":"u","email":"a@b.co","password":"abcdefg!"}`,
			want: []string{"Password must contain only alphanumeric characters"},
		},
		{
			name: "non alphanumeric long password",
			body: `{"username":"u","email":"a@b.co","password":"abcdefghijklmnop!"}`,
			want: []string{"Password must contain only alphanumeric characters"},
		},
		{
			name: "malformed json",
			body: `{"username":`,
			want: []string{"invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/auth/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, errorMessages(t, rec))
		})
	}
}

func TestSignIn(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.signUp(t, "hanako", "hanako@gmail.com")

	t.Run("correct credentials", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/signin", "", `{"email":"hanako@gmail.com","password":"password1"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
		_, err := s.jwtManager.ValidateToken(rec.Body.String())
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/signin", "", `{"email":"hanako@gmail.com","password":"password2"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, []string{"Invalid password"}, errorMessages(t, rec))
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/signin", "", `{"email":"nobody@gmail.com","password":"password1"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, []string{"User not found"}, errorMessages(t, rec))
	})
}

func TestTodoRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/todos", ""},
		{http.MethodGet, "/api/todos/1", ""},
		{http.MethodPost, "/api/todos", `{"title":"t","content":"c"}`},
		{http.MethodPut, "/api/todos/1", `{"title":"t","content":"c"}`},
		{http.MethodDelete, "/api/todos/1", ""},
		// invalid input still yields 401 first
		{http.MethodGet, "/api/todos/abc", ""},
	}

	for _, route := range routes {
		for _, token := range []string{"", "garbled"} {
			rec := s.do(route.method, route.path, token, route.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s token=%q", route.method, route.path, token)
		}
	}
}

func TestTodo_OwnershipIsolation(t *testing.T) {
	s := newTestServer(t, nil, nil)
	alice := s.signUp(t, "alice", "alice@gmail.com")
	bob := s.signUp(t, "bob", "bob@gmail.com")

	todo := s.createTodo(t, alice, "Alice only")
	path := "/api/todos/" + itoa(todo.ID)

	rec := s.do(http.MethodGet, path, bob, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Todo not found"}, errorMessages(t, rec))

	rec = s.do(http.MethodPut, path, bob, `{"title":"hijacked","content":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Todo not found"}, errorMessages(t, rec))

	rec = s.do(http.MethodDelete, path, bob, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Todo not found"}, errorMessages(t, rec))

	rec = s.do(http.MethodGet, path, alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Alice only", got.Title)
}

func TestTodo_MissingIDs(t *testing.T) {
	s := newTestServer(t, nil, nil)
	token := s.signUp(t, "alice", "alice@gmail.com")

	rec := s.do(http.MethodPut, "/api/todos/999", token, `{"title":"t","content":"c"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Todo not found"}, errorMessages(t, rec))

	rec = s.do(http.MethodDelete, "/api/todos/999", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/todos/0", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"id must be a positive integer"}, errorMessages(t, rec))
}

func TestTodo_KeywordFilter(t *testing.T) {
	s := newTestServer(t, nil, nil)
	user1 := s.signUp(t, "user1", "user1@gmail.com")
	user2 := s.signUp(t, "user2", "user2@gmail.com")

	s.createTodo(t, user1, "Test Todo")
	s.createTodo(t, user1, "eest Todo2")
	s.createTodo(t, user2, "Test Todo3")

	rec := s.do(http.MethodGet, "/api/todos?keyword=Test", user1, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, "Test Todo", todos[0].Title)

	rec = s.do(http.MethodGet, "/api/todos", user1, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	assert.Len(t, todos, 2)
}

func TestTodo_EmptyListIsArray(t *testing.T) {
	s := newTestServer(t, nil, nil)
	token := s.signUp(t, "alice", "alice@gmail.com")

	rec := s.do(http.MethodGet, "/api/todos", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTodo_TitleLimit(t *testing.T) {
	s := newTestServer(t, nil, nil)
	token := s.signUp(t, "alice", "alice@gmail.com")

	title30 := strings.Repeat("a", 30)
	title31 := strings.Repeat("a", 31)

	todo := s.createTodo(t, token, title30)

	rec := s.do(http.MethodPost, "/api/todos", token, `{"title":"`+title31+`","content":"c"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"title must not exceed 30 characters"}, errorMessages(t, rec))

	path := "/api/todos/" + itoa(todo.ID)
	rec = s.do(http.MethodPut, path, token, `{"title":"`+title30+`","content":"edited"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, path, token, `{"title":"`+title31+`","content":"edited"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"title must not exceed 30 characters"}, errorMessages(t, rec))
}

func TestTodo_CRUD(t *testing.T) {
	s := newTestServer(t, nil, nil)
	token := s.signUp(t, "alice", "alice@gmail.com")

	created := s.createTodo(t, token, "Buy milk")
	assert.Equal(t, int64(1), created.UserID)
	path := "/api/todos/" + itoa(created.ID)

	rec := s.do(http.MethodPut, path, token, `{"title":"Buy oat milk","content":"2 litres"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Buy oat milk", updated["title"])
	assert.Equal(t, "2 litres", updated["content"])
	for _, key := range []string{"id", "userId", "createdAt", "updatedAt"} {
		assert.Contains(t, updated, key)
	}

	rec = s.do(http.MethodDelete, path, token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(http.MethodGet, path, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type failingTodoStore struct {
	storage.TodoStore
}

func (failingTodoStore) ListTodos(context.Context, models.TodoFilter) ([]*models.Todo, error) {
	return nil, errors.New("connection reset")
}

func TestInternalErrorsHideDetail(t *testing.T) {
	s := newTestServer(t, failingTodoStore{}, nil)
	token := s.signUp(t, "alice", "alice@gmail.com")

	rec := s.do(http.MethodGet, "/api/todos", token, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"errors":[]}`, rec.Body.String())
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	rec := newTestServer(t, nil, stubPinger{}).do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = newTestServer(t, nil, stubPinger{err: errors.New("down")}).do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORS_AllowsFrontendOrigin(t *testing.T) {
	s := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	rec := newTestServer(t, nil, nil).do(http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":[]}`, rec.Body.String())
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
