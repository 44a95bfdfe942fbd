package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/juwono136/go-user-service/internal/user"
)

var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrNameTooShort     = errors.New("your name must be at least 3 letters long")
	ErrPasswordMismatch = errors.New("password did not match")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Registration is a raw signup submission as posted by the client.
type Registration struct {
	PersonalID      string `json:"personal_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Address         string `json:"address"`
	PhoneNumber     string `json:"phone_number"`
}

// PendingRegistration is a validated signup whose password has already
// been hashed. It is never persisted on its own: it lives exclusively
// inside a signed activation token until that token is redeemed.
type PendingRegistration struct {
	PersonalID  string `json:"personal_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"` // bcrypt hash, never plaintext
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// Activation drives the path from submitted registration to durable
// account. Submit only mints a token; Redeem is the sole place an
// account row gets created.
type Activation struct {
	store  UserStore
	tokens *TokenService
	hasher *PasswordHasher
}

func NewActivation(store UserStore, tokens *TokenService, hasher *PasswordHasher) *Activation {
	return &Activation{store: store, tokens: tokens, hasher: hasher}
}

// Submit validates a registration, hashes its password and mints an
// activation token carrying the whole pending payload. It never writes
// to the store. The duplicate-email check here is only an early
// courtesy; the unique index hit at redemption time is authoritative.
func (a *Activation) Submit(ctx context.Context, reg Registration) (string, error) {
	if err := validateRegistration(reg); err != nil {
		return "", err
	}

	_, err := a.store.FindByEmail(ctx, reg.Email)
	if err == nil {
		return "", user.ErrDuplicateEmail
	}
	if !errors.Is(err, user.ErrNotFound) {
		return "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := a.hasher.Hash(reg.Password)
	if err != nil {
		return "", err
	}

	return a.tokens.CreateActivationToken(PendingRegistration{
		PersonalID:  reg.PersonalID,
		Name:        reg.Name,
		Email:       reg.Email,
		Password:    hashed,
		Address:     reg.Address,
		PhoneNumber: reg.PhoneNumber,
	})
}

// Redeem verifies an activation token and persists the account it
// carries. Two concurrent redemptions of the same email race on the
// store's unique index: exactly one insert wins, the other surfaces
// user.ErrDuplicateEmail.
func (a *Activation) Redeem(ctx context.Context, tokenStr string) (*user.User, error) {
	pending, err := a.tokens.VerifyActivationToken(tokenStr)
	if err != nil {
		return nil, err
	}

	created, err := a.store.InsertUnique(ctx, &user.User{
		PersonalID:  pending.PersonalID,
		Name:        pending.Name,
		Email:       pending.Email,
		Password:    pending.Password,
		Address:     pending.Address,
		PhoneNumber: pending.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func validateRegistration(reg Registration) error {
	if reg.PersonalID == "" || reg.Name == "" || reg.Email == "" ||
		reg.Password == "" || reg.ConfirmPassword == "" {
		return ErrMissingFields
	}

	if len(reg.Name) < 3 {
		return ErrNameTooShort
	}

	if reg.Password != reg.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if !emailPattern.MatchString(reg.Email) {
		return ErrInvalidEmail
	}

	if !validPassword(reg.Password) {
		return ErrWeakPassword
	}

	return nil
}

// validPassword enforces 6 to 20 characters with at least one digit,
// one lowercase and one uppercase letter.
func validPassword(password string) bool {
	if len(password) < 6 || len(password) > 20 {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	return hasDigit && hasLower && hasUpper
}
