package handlers

import (
	"net/http"

	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/respond"
	"github.com/Varun5711/todolist/internal/service"
	"github.com/Varun5711/todolist/internal/validation"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// SignUp answers 201 with the session token as plain text.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	in := validation.FromContext(r.Context())

	token, err := h.auth.Register(r.Context(), in.Get("username"), in.Get("email"), in.Get("password"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.Text(w, http.StatusCreated, token)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	in := validation.FromContext(r.Context())

	token, err := h.auth.Authenticate(r.Context(), in.Get("email"), in.Get("password"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	respond.Text(w, http.StatusOK, token)
}
