package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/juwono136/go-user-service/internal/httputil"
)

// ContextKey is a dedicated type for context keys to avoid collisions.
type ContextKey string

// UserIDContextKey is the key under which the authenticated account ID
// is stored in the request context.
const UserIDContextKey ContextKey = "user_id"

// Middleware guards routes behind a bearer access token.
type Middleware struct {
	tokens *TokenService
}

func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth verifies the Authorization bearer token and attaches the
// account ID to the request context. A missing header, a malformed
// header and a token that fails verification all produce the same
// response so a caller learns nothing about why auth failed.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.authorize(r)
		if !ok {
			httputil.RespondError(w, "Invalid authentication", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) authorize(r *http.Request) (uuid.UUID, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	userID, err := m.tokens.VerifyAccessToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetUserIDFromContext extracts the authenticated account ID from the
// request context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	return userID, ok
}
