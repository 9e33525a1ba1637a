package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Varun5711/todolist/internal/auth"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/respond"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller, taken from a verified token.
type Identity struct {
	UserID int64
	Email  string
}

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	log        *logger.Logger
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		log:        log,
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's Identity in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			respond.Errors(w, http.StatusUnauthorized, nil)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.log.Debug("Rejected token: %v", err)
			respond.Errors(w, http.StatusUnauthorized, []string{"Invalid Token: " + err.Error()})
			return
		}

		ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID, Email: claims.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// UserID returns the caller's id, or 0 when the request is anonymous.
func UserID(ctx context.Context) int64 {
	id, _ := IdentityFromContext(ctx)
	return id.UserID
}
