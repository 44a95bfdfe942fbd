package auth

import (
	"net/http"
	"time"
)

const (
	// RefreshTokenCookieName is the cookie the refresh token travels in.
	RefreshTokenCookieName = "refreshtoken"

	// RefreshTokenCookiePath scopes the cookie to the token-exchange
	// path, so the browser never attaches it to any other request.
	RefreshTokenCookiePath = "/api/user/refresh_token"
)

// SetRefreshTokenCookie delivers the refresh token as an HTTP-only,
// path-scoped cookie. Script can never read it; only requests to the
// refresh path carry it.
func SetRefreshTokenCookie(w http.ResponseWriter, token string, secure bool, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    token,
		Path:     RefreshTokenCookiePath,
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearRefreshTokenCookie expires the refresh cookie. The path must
// match the one set at signin or the browser keeps the original.
func ClearRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    "",
		Path:     RefreshTokenCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
