package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/juwono136/go-user-service/internal/httputil"
	"github.com/juwono136/go-user-service/internal/logging"
	"github.com/juwono136/go-user-service/internal/user"
)

// Handler contains the HTTP handlers for the user endpoints.
type Handler struct {
	service         *Service
	isProduction    bool
	clientURL       string
	refreshDuration time.Duration
}

func NewHandler(service *Service, isProduction bool, clientURL string, refreshDuration time.Duration) *Handler {
	return &Handler{
		service:         service,
		isProduction:    isProduction,
		clientURL:       clientURL,
		refreshDuration: refreshDuration,
	}
}

// ActivateRequest carries the activation token posted by the client.
type ActivateRequest struct {
	ActivationToken string `json:"activation_token"`
}

// SignInRequest represents the signin request body.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the trimmed user object returned at signin.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// SignInResponse represents the signin response body. The refresh token
// is delivered only through the cookie, never here.
type SignInResponse struct {
	Message     string      `json:"message"`
	User        UserSummary `json:"user"`
	AccessToken string      `json:"access_token"`
}

// UpdateProfileResponse represents the profile update response body.
type UpdateProfileResponse struct {
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}

// SignUp handles user registration
// @Summary      Sign up a new user
// @Description  Validate the registration and email an activation link. No account is created until the link is used.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body Registration true "Registration fields"
// @Success      200 {object} httputil.MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation failure or duplicate email"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/user/signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var reg Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		logger.Warn("invalid signup request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SignUp(r.Context(), reg); err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			httputil.RespondError(w, "Please fill in all fields", http.StatusBadRequest)
		case errors.Is(err, ErrNameTooShort):
			httputil.RespondError(w, "Your name must be at least 3 letters long", http.StatusBadRequest)
		case errors.Is(err, ErrPasswordMismatch):
			httputil.RespondError(w, "Password did not match", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidEmail):
			httputil.RespondError(w, "Invalid emails", http.StatusBadRequest)
		case errors.Is(err, ErrWeakPassword):
			httputil.RespondError(w, "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letters", http.StatusBadRequest)
		case errors.Is(err, user.ErrDuplicateEmail):
			httputil.RespondError(w, "This email is already registered", http.StatusBadRequest)
		default:
			logger.Error("signup failed", "error", err.Error())
			httputil.RespondError(w, "failed to sign up", http.StatusInternalServerError)
		}
		return
	}

	logger.Info("registration accepted", "email", reg.Email)

	httputil.RespondMessage(w, "Register Success! Please activate your email to start", http.StatusOK)
}

// Activate handles email activation
// @Summary      Activate a pending registration
// @Description  Redeem an activation token; the account row is created here, at most once per email.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body ActivateRequest true "Activation token"
// @Success      200 {object} httputil.MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid or expired token, or email already active"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/user/activation [post]
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid activation request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	activated, err := h.service.Activate(r.Context(), req.ActivationToken)
	if err != nil {
		h.respondActivationError(w, logger, err)
		return
	}

	logger.Info("account activated", "user_id", activated.ID)

	httputil.RespondMessage(w, "Account has been activated. Please login now!", http.StatusOK)
}

// ActivateLink handles the activation link clicked from the email
// @Summary      Activate via emailed link
// @Description  Redeem the activation token from the URL and redirect the browser to the client app with the outcome.
// @Tags         user
// @Produce      json
// @Param        activation_token path string true "Activation token"
// @Success      302 {string} string "Redirect to client"
// @Router       /api/user/activate/{activation_token} [get]
func (h *Handler) ActivateLink(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	tokenStr := chi.URLParam(r, "activation_token")

	status := "success"
	message := "Account has been activated. Please login now!"

	if _, err := h.service.Activate(r.Context(), tokenStr); err != nil {
		status = "error"
		switch {
		case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken):
			message = "Email activation failed"
		case errors.Is(err, user.ErrDuplicateEmail):
			message = "This email already exists"
		default:
			logger.Error("activation via link failed", "error", err.Error())
			message = "Email activation failed"
		}
	}

	redirectURL := fmt.Sprintf("%s/?status=%s&message=%s",
		h.clientURL, status, url.QueryEscape(message))
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// SignIn handles user signin
// @Summary      Sign in
// @Description  Verify credentials, return an access token and set the refresh-token cookie.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Credentials"
// @Success      200 {object} SignInResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid credentials"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/user/signin [post]
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid signin request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tokens, account, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			httputil.RespondError(w, "Please fill in all fields", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidCredentials):
			// Identical body for unknown email and wrong password.
			httputil.RespondError(w, "Invalid Credentials", http.StatusBadRequest)
		default:
			logger.Error("signin failed", "error", err.Error())
			httputil.RespondError(w, "failed to sign in", http.StatusInternalServerError)
		}
		return
	}

	SetRefreshTokenCookie(w, tokens.RefreshToken, h.isProduction, h.refreshDuration)

	logger.Info("user signed in", "user_id", account.ID)

	httputil.RespondJSON(w, SignInResponse{
		Message: "Sign In successfully!",
		User: UserSummary{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
		},
		AccessToken: tokens.AccessToken,
	}, http.StatusOK)
}

// UserInfo returns the authenticated user's profile
// @Summary      Get user information
// @Description  Return the authenticated account without the credential field.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.User
// @Failure      403 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /api/user/user-infor [get]
func (h *Handler) UserInfo(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, "Invalid authentication", http.StatusForbidden)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httputil.RespondError(w, "User not found.", http.StatusNotFound)
			return
		}
		logger.Error("failed to get profile", "error", err.Error())
		httputil.RespondError(w, "failed to get user information", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, profile, http.StatusOK)
}

// UpdateProfile updates the authenticated user's profile
// @Summary      Update user profile
// @Description  Apply the allow-listed profile fields; anything else in the body is ignored.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body map[string]string true "Profile fields"
// @Success      200 {object} UpdateProfileResponse
// @Failure      400 {object} httputil.ErrorResponse "No valid fields"
// @Failure      403 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /api/user/update_profile [patch]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, "Invalid authentication", http.StatusForbidden)
		return
	}

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		logger.Warn("invalid update profile request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoValidFields):
			httputil.RespondError(w, "No valid fields provided for update.", http.StatusBadRequest)
		case errors.Is(err, user.ErrNotFound):
			httputil.RespondError(w, "User not found.", http.StatusNotFound)
		default:
			logger.Error("failed to update profile", "error", err.Error())
			httputil.RespondError(w, "failed to update profile", http.StatusInternalServerError)
		}
		return
	}

	logger.Info("profile updated", "user_id", userID)

	httputil.RespondJSON(w, UpdateProfileResponse{
		Message: "Profile updated successfully!",
		User:    updated,
	}, http.StatusOK)
}

// Logout clears the refresh cookie
// @Summary      Log out
// @Description  Clear the refresh-token cookie. Issued tokens stay valid until expiry; there is no server-side session to revoke.
// @Tags         user
// @Produce      json
// @Success      200 {object} httputil.MessageResponse
// @Router       /api/user/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearRefreshTokenCookie(w)

	httputil.RespondMessage(w, "Logged out successfully!", http.StatusOK)
}

func (h *Handler) respondActivationError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken):
		// Generic message: callers do not get to learn which check failed.
		logger.Warn("activation failed: token verification")
		httputil.RespondError(w, "Email activation failed", http.StatusBadRequest)
	case errors.Is(err, user.ErrDuplicateEmail):
		logger.Warn("activation failed: email already exists")
		httputil.RespondError(w, "This email already exists.", http.StatusBadRequest)
	default:
		logger.Error("activation failed", "error", err.Error())
		httputil.RespondError(w, "failed to activate account", http.StatusInternalServerError)
	}
}
