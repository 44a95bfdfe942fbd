package auth

import (
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenService creates and verifies PASETO v4.local tokens. Every token
// purpose has its own symmetric key, so an activation token can never
// be replayed as an access or refresh token.
//
// Possession of a valid, unexpired token is the entire trust basis:
// nothing is stored server-side, which also means a leaked token cannot
// be revoked before its natural expiry.
type TokenService struct {
	activationKey paseto.V4SymmetricKey
	accessKey     paseto.V4SymmetricKey
	refreshKey    paseto.V4SymmetricKey

	activationDuration time.Duration
	accessDuration     time.Duration
	refreshDuration    time.Duration
}

func NewTokenService(
	activationKey, accessKey, refreshKey []byte,
	activationDuration, accessDuration, refreshDuration time.Duration,
) (*TokenService, error) {
	keys := make([]paseto.V4SymmetricKey, 3)
	for i, raw := range [][]byte{activationKey, accessKey, refreshKey} {
		if len(raw) != 32 {
			return nil, fmt.Errorf("symmetric key must be exactly 32 bytes, got %d", len(raw))
		}
		key, err := paseto.V4SymmetricKeyFromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to create symmetric key: %w", err)
		}
		keys[i] = key
	}

	return &TokenService{
		activationKey:      keys[0],
		accessKey:          keys[1],
		refreshKey:         keys[2],
		activationDuration: activationDuration,
		accessDuration:     accessDuration,
		refreshDuration:    refreshDuration,
	}, nil
}

// CreateActivationToken embeds a full pending registration in a signed
// token. The token is the only place the pending account exists; no
// database row is written until it is redeemed.
func (s *TokenService) CreateActivationToken(pending PendingRegistration) (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(s.activationDuration))
	if err := token.Set("registration", pending); err != nil {
		return "", fmt.Errorf("failed to set registration claim: %w", err)
	}

	return token.V4Encrypt(s.activationKey, nil), nil
}

// VerifyActivationToken validates an activation token and returns the
// pending registration it carries.
func (s *TokenService) VerifyActivationToken(tokenStr string) (*PendingRegistration, error) {
	token, err := parseToken(s.activationKey, tokenStr)
	if err != nil {
		return nil, err
	}

	var pending PendingRegistration
	if err := token.Get("registration", &pending); err != nil {
		return nil, ErrInvalidToken
	}

	return &pending, nil
}

// CreateAccessToken mints a short-lived bearer token whose only claim
// is the account identifier.
func (s *TokenService) CreateAccessToken(userID uuid.UUID) (string, error) {
	return s.createIdentityToken(s.accessKey, userID, s.accessDuration), nil
}

// VerifyAccessToken validates an access token and returns the account
// identifier it carries.
func (s *TokenService) VerifyAccessToken(tokenStr string) (uuid.UUID, error) {
	token, err := parseToken(s.accessKey, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}

	raw, err := token.GetString("user_id")
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

// CreateRefreshToken mints the long-lived token delivered as an
// HTTP-only cookie at signin. No endpoint verifies refresh tokens yet;
// a /refresh_token exchange is a deliberate extension point, so this
// service intentionally exposes no VerifyRefreshToken.
func (s *TokenService) CreateRefreshToken(userID uuid.UUID) (string, error) {
	return s.createIdentityToken(s.refreshKey, userID, s.refreshDuration), nil
}

func (s *TokenService) createIdentityToken(key paseto.V4SymmetricKey, userID uuid.UUID, duration time.Duration) string {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(duration))
	token.SetString("user_id", userID.String())

	return token.V4Encrypt(key, nil)
}

// parseToken decrypts and validates a token against one key. The
// parser rejects expired tokens by default; rule failures surface as
// ErrExpiredToken, everything else (tampered payload, wrong key,
// malformed input) as ErrInvalidToken.
func parseToken(key paseto.V4SymmetricKey, tokenStr string) (*paseto.Token, error) {
	parser := paseto.NewParser()

	token, err := parser.ParseV4Local(key, tokenStr, nil)
	if err != nil {
		if errors.Is(err, &paseto.RuleError{}) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return token, nil
}
