package handlers

import (
	"net/http"
	"strings"

	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/middleware"
	"github.com/Varun5711/todolist/internal/respond"
	"github.com/Varun5711/todolist/internal/validation"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	// APIPrefix is prepended to every API route, e.g. "/api".
	APIPrefix string
	// FrontendOrigin is the only origin allowed by CORS. Empty disables CORS.
	FrontendOrigin string

	Auth   *AuthHandler
	Todos  *TodoHandler
	Health *HealthHandler

	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional.
	RateLimiter *middleware.RateLimiter

	Log *logger.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(middleware.Recover(cfg.Log))

	if cfg.FrontendOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.FrontendOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Errors(w, http.StatusNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Errors(w, http.StatusMethodNotAllowed, nil)
	})

	r.Get("/health", cfg.Health.Health)

	api := func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(validation.Validate(validation.SignUp)).Post("/signup", cfg.Auth.SignUp)
			r.With(validation.Validate(validation.SignIn)).Post("/signin", cfg.Auth.SignIn)
		})

		// auth runs before validation
		r.Route("/todos", func(r chi.Router) {
			r.Use(cfg.AuthMiddleware.RequireAuth)

			r.Get("/", cfg.Todos.List)
			r.With(validation.Validate(validation.TodoCreate)).Post("/", cfg.Todos.Create)
			r.With(validation.Validate(validation.TodoID)).Get("/{id}", cfg.Todos.Get)
			r.With(validation.Validate(validation.TodoUpdate)).Put("/{id}", cfg.Todos.Update)
			r.With(validation.Validate(validation.TodoID)).Delete("/{id}", cfg.Todos.Delete)
		})
	}

	prefix := "/" + strings.Trim(cfg.APIPrefix, "/")
	if prefix == "/" {
		api(r)
	} else {
		r.Route(prefix, api)
	}

	return r
}
