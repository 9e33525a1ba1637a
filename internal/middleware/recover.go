package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/respond"
)

// Recover turns a panic in a handler into a 500 with an empty error list.
func Recover(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				respond.Errors(w, http.StatusInternalServerError, nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
