package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/juwono136/go-user-service/internal/logging"
	"github.com/juwono136/go-user-service/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoValidFields      = errors.New("no valid fields provided for update")
)

// profileUpdateFields is the allow-list of mutable profile fields.
// Anything else submitted in an update is silently dropped, which in
// particular keeps password and email out of reach of this endpoint.
var profileUpdateFields = map[string]bool{
	"name":         true,
	"personal_id":  true,
	"address":      true,
	"phone_number": true,
	"user_image":   true,
}

// SessionTokens is the pair minted at signin: a short-lived bearer
// access token plus the longer-lived refresh token destined for an
// HTTP-only cookie.
type SessionTokens struct {
	AccessToken  string
	RefreshToken string
}

// Service orchestrates signup, activation, signin and profile access.
type Service struct {
	store        UserStore
	activation   *Activation
	tokens       *TokenService
	hasher       *PasswordHasher
	emailService EmailService
	logger       *logging.Logger
	serverURL    string
}

func NewService(
	store UserStore,
	activation *Activation,
	tokens *TokenService,
	hasher *PasswordHasher,
	emailService EmailService,
	logger *logging.Logger,
	serverURL string,
) *Service {
	return &Service{
		store:        store,
		activation:   activation,
		tokens:       tokens,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
		serverURL:    serverURL,
	}
}

// SignUp validates a registration and mails an activation link carrying
// the signed pending payload. No account is persisted here. Mail
// delivery is fire-and-forget: a send failure is logged and the signup
// still counts as accepted, so users who never get the mail simply sign
// up again.
func (s *Service) SignUp(ctx context.Context, reg Registration) error {
	token, err := s.activation.Submit(ctx, reg)
	if err != nil {
		return err
	}

	activationLink := fmt.Sprintf("%s/api/user/activate/%s", s.serverURL, token)

	go func() {
		// Detached context: the request finishing must not cancel the send.
		emailCtx := context.Background()
		if err := s.emailService.SendActivationEmail(emailCtx, reg.Email, activationLink); err != nil {
			s.logger.Warn("failed to send activation email", "email", reg.Email, "error", err)
		}
	}()

	return nil
}

// Activate redeems an activation token into a durable account.
func (s *Service) Activate(ctx context.Context, tokenStr string) (*user.User, error) {
	return s.activation.Redeem(ctx, tokenStr)
}

// SignIn verifies credentials and mints the session token pair.
// Unknown email and wrong password return the same ErrInvalidCredentials
// so the response gives no account-enumeration signal.
func (s *Service) SignIn(ctx context.Context, email, password string) (*SessionTokens, *user.User, error) {
	if email == "" || password == "" {
		return nil, nil, ErrMissingFields
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, account.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.CreateAccessToken(account.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, err := s.tokens.CreateRefreshToken(account.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return &SessionTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, account, nil
}

// GetProfile returns the account for an authenticated identity with the
// credential hash stripped.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	account, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.Password = ""
	return account, nil
}

// UpdateProfile applies the allow-listed subset of the submitted fields
// and returns the updated account. Unknown or immutable fields are
// dropped without error; if nothing remains, ErrNoValidFields.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]any) (*user.User, error) {
	fields := make(map[string]string)
	for key, value := range updates {
		if !profileUpdateFields[key] {
			continue
		}
		if str, ok := value.(string); ok {
			fields[key] = str
		}
	}

	if len(fields) == 0 {
		return nil, ErrNoValidFields
	}

	account, err := s.store.UpdateByID(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	account.Password = ""
	return account, nil
}
