package middleware

import (
	"net/http"
	"time"

	"github.com/Varun5711/todolist/internal/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with status and duration.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			line := "%s %s %d %dB %s req=%s"
			args := []interface{}{r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(start), chimiddleware.GetReqID(r.Context())}
			switch {
			case status >= 500:
				log.Error(line, args...)
			case status >= 400:
				log.Warn(line, args...)
			default:
				log.Info(line, args...)
			}
		})
	}
}
