package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/juwono136/go-user-service/internal/auth"
)

func TestMiddleware_RequireAuth(t *testing.T) {
	tokens := newTestTokenService(t, 24*time.Hour, 15*time.Minute, 24*time.Hour)
	mw := auth.NewMiddleware(tokens)

	userID := uuid.New()
	validToken, err := tokens.CreateAccessToken(userID)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = auth.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.RequireAuth(next)

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/user/user-infor", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid bearer token reaches the handler with the identity", func(t *testing.T) {
		rec := do("Bearer " + validToken)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, gotOK)
		require.Equal(t, userID, gotUserID)
	})

	t.Run("all failures share one response", func(t *testing.T) {
		refreshToken, err := tokens.CreateRefreshToken(userID)
		require.NoError(t, err)

		expired := newTestTokenService(t, 24*time.Hour, -time.Minute, 24*time.Hour)
		expiredToken, err := expired.CreateAccessToken(userID)
		require.NoError(t, err)

		headers := map[string]string{
			"missing header":            "",
			"no bearer prefix":          validToken,
			"wrong scheme":              "Basic " + validToken,
			"tampered signature":        "Bearer " + tamper(validToken),
			"garbage token":             "Bearer garbage",
			"refresh token as bearer":   "Bearer " + refreshToken,
			"expired token":             "Bearer " + expiredToken,
			"too many header segments":  "Bearer " + validToken + " extra",
		}

		var bodies []string
		for name, header := range headers {
			rec := do(header)
			require.Equalf(t, http.StatusForbidden, rec.Code, "case %q", name)
			bodies = append(bodies, rec.Body.String())
		}

		// Byte-identical bodies: the response reveals nothing about why
		// authorization failed.
		for _, body := range bodies {
			require.Equal(t, bodies[0], body)
		}
	})
}
