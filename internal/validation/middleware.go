package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Varun5711/todolist/internal/respond"
	"github.com/go-chi/chi/v5"
)

const (
	MsgInvalidBody = "invalid request body"

	maxBodyBytes = 1 << 20
)

type contextKey struct{}

// Validate runs chain against the request and answers 400 with every
// failing message. On success the collected values are stored in the request
// context for FromContext.
func Validate(chain Chain) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			if chain.hasSource(Body) {
				var err error
				body, err = readBody(w, r)
				if err != nil {
					respond.Errors(w, http.StatusBadRequest, []string{MsgInvalidBody})
					return
				}
			}

			values := make(Values, len(chain))
			for _, field := range chain {
				switch field.Source {
				case Body:
					values[field.Name] = stringify(body[field.Name])
				case Path:
					values[field.Name] = chi.URLParam(r, field.Name)
				case Query:
					values[field.Name] = r.URL.Query().Get(field.Name)
				}
			}

			if messages := chain.Check(values); len(messages) > 0 {
				respond.Errors(w, http.StatusBadRequest, messages)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, values)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the values stored by Validate, or an empty set.
func FromContext(ctx context.Context) Values {
	if values, ok := ctx.Value(contextKey{}).(Values); ok {
		return values
	}
	return Values{}
}

// readBody decodes a JSON object body and puts the bytes back on r. An empty
// body decodes to no fields.
func readBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, error) {
	if r.Body == nil {
		return map[string]interface{}{}, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]interface{}{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]interface{}
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, nil
}

// stringify turns a decoded JSON scalar into the string the rules see.
// Objects, arrays and null count as empty.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
