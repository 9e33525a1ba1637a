// Package respond writes API responses. Every error body has the shape
// {"errors": [...]}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/Varun5711/todolist/internal/models"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// Errors writes messages as an error body. A nil slice is sent as [].
func Errors(w http.ResponseWriter, status int, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	JSON(w, status, models.ErrorResponse{Errors: messages})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
