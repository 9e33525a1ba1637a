package handlers

import (
	"net/http"
	"strconv"

	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/middleware"
	"github.com/Varun5711/todolist/internal/respond"
	"github.com/Varun5711/todolist/internal/service"
	"github.com/Varun5711/todolist/internal/validation"
)

type TodoHandler struct {
	todos *service.TodoService
	log   *logger.Logger
}

func NewTodoHandler(todos *service.TodoService, log *logger.Logger) *TodoHandler {
	return &TodoHandler{
		todos: todos,
		log:   log,
	}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.UserID(r.Context())

	todos, err := h.todos.List(r.Context(), ownerID, r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.JSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	in := validation.FromContext(r.Context())

	todo, err := h.todos.Get(r.Context(), todoID(in), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.JSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	in := validation.FromContext(r.Context())

	todo, err := h.todos.Create(r.Context(), middleware.UserID(r.Context()), in.Get("title"), in.Get("content"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.JSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	in := validation.FromContext(r.Context())

	todo, err := h.todos.Update(r.Context(), todoID(in), middleware.UserID(r.Context()), in.Get("title"), in.Get("content"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.JSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	in := validation.FromContext(r.Context())

	if err := h.todos.Delete(r.Context(), todoID(in), middleware.UserID(r.Context())); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.NoContent(w)
}

// todoID parses the id the validation chain already checked.
func todoID(in validation.Values) int64 {
	id, _ := strconv.ParseInt(in.Get("id"), 10, 64)
	return id
}
