package handlers

import (
	"net/http"

	"github.com/Varun5711/todolist/internal/apperror"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/respond"
)

// writeError maps err to its status and public messages. Internal errors are
// logged and answered with an empty error list.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.Internal {
		log.Error("%s %s: %v", r.Method, r.URL.Path, err)
	}
	respond.Errors(w, appErr.StatusCode(), appErr.PublicMessages())
}
