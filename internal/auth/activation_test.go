package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/juwono136/go-user-service/internal/auth"
	"github.com/juwono136/go-user-service/internal/user"
	"github.com/juwono136/go-user-service/internal/user/userfake"
)

func validRegistration() auth.Registration {
	return auth.Registration{
		PersonalID:      "BN12363468",
		Name:            "juwono",
		Email:           "a@b.com",
		Password:        "Abc123",
		ConfirmPassword: "Abc123",
		Address:         "Bandung, Indonesia",
		PhoneNumber:     "089286382736431",
	}
}

func newActivation(t *testing.T, store auth.UserStore) *auth.Activation {
	t.Helper()
	tokens := newTestTokenService(t, 24*time.Hour, 15*time.Minute, 24*time.Hour)
	return auth.NewActivation(store, tokens, auth.NewPasswordHasher(bcrypt.MinCost))
}

func TestActivation_SubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*auth.Registration)
		wantErr error
	}{
		{"missing personal id", func(r *auth.Registration) { r.PersonalID = "" }, auth.ErrMissingFields},
		{"missing name", func(r *auth.Registration) { r.Name = "" }, auth.ErrMissingFields},
		{"missing email", func(r *auth.Registration) { r.Email = "" }, auth.ErrMissingFields},
		{"missing password", func(r *auth.Registration) { r.Password = "" }, auth.ErrMissingFields},
		{"missing confirmation", func(r *auth.Registration) { r.ConfirmPassword = "" }, auth.ErrMissingFields},
		{"name too short", func(r *auth.Registration) { r.Name = "ju" }, auth.ErrNameTooShort},
		{"password mismatch", func(r *auth.Registration) { r.ConfirmPassword = "Abc124" }, auth.ErrPasswordMismatch},
		{"email without at sign", func(r *auth.Registration) { r.Email = "ab.com" }, auth.ErrInvalidEmail},
		{"email without domain dot", func(r *auth.Registration) { r.Email = "a@bcom" }, auth.ErrInvalidEmail},
		{"password too short", func(r *auth.Registration) { r.Password = "Ab1"; r.ConfirmPassword = "Ab1" }, auth.ErrWeakPassword},
		{"password too long", func(r *auth.Registration) {
			r.Password = "Abc1234567890123456789"
			r.ConfirmPassword = "Abc1234567890123456789"
		}, auth.ErrWeakPassword},
		{"password without digit", func(r *auth.Registration) { r.Password = "Abcdef"; r.ConfirmPassword = "Abcdef" }, auth.ErrWeakPassword},
		{"password without uppercase", func(r *auth.Registration) { r.Password = "abc123"; r.ConfirmPassword = "abc123" }, auth.ErrWeakPassword},
		{"password without lowercase", func(r *auth.Registration) { r.Password = "ABC123"; r.ConfirmPassword = "ABC123" }, auth.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := userfake.NewFakeUserRepo()
			activation := newActivation(t, store)

			reg := validRegistration()
			tt.mutate(&reg)

			_, err := activation.Submit(context.Background(), reg)
			require.ErrorIs(t, err, tt.wantErr)
			require.Zero(t, store.Count(), "validation failures must not touch the store")
		})
	}
}

func TestActivation_Submit(t *testing.T) {
	t.Run("mints a token without writing to the store", func(t *testing.T) {
		store := userfake.NewFakeUserRepo()
		activation := newActivation(t, store)

		token, err := activation.Submit(context.Background(), validRegistration())
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Zero(t, store.Count())
	})

	t.Run("rejects an email that already has an account", func(t *testing.T) {
		store := userfake.NewFakeUserRepo()
		activation := newActivation(t, store)

		_, err := store.InsertUnique(context.Background(), &user.User{Email: "a@b.com"})
		require.NoError(t, err)

		_, err = activation.Submit(context.Background(), validRegistration())
		require.ErrorIs(t, err, user.ErrDuplicateEmail)
	})
}

func TestActivation_Redeem(t *testing.T) {
	t.Run("persists the pending account with its hashed password", func(t *testing.T) {
		store := userfake.NewFakeUserRepo()
		activation := newActivation(t, store)

		token, err := activation.Submit(context.Background(), validRegistration())
		require.NoError(t, err)

		account, err := activation.Redeem(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, "a@b.com", account.Email)
		require.Equal(t, "juwono", account.Name)
		require.NotEmpty(t, account.ID)
		require.NotEqual(t, "Abc123", account.Password, "password must be stored hashed")
		require.Equal(t, 1, store.Count())
	})

	t.Run("second redemption of the same token fails cleanly", func(t *testing.T) {
		store := userfake.NewFakeUserRepo()
		activation := newActivation(t, store)

		token, err := activation.Submit(context.Background(), validRegistration())
		require.NoError(t, err)

		_, err = activation.Redeem(context.Background(), token)
		require.NoError(t, err)

		_, err = activation.Redeem(context.Background(), token)
		require.ErrorIs(t, err, user.ErrDuplicateEmail)
		require.Equal(t, 1, store.Count())
	})

	t.Run("expired token fails even when well-formed", func(t *testing.T) {
		store := userfake.NewFakeUserRepo()
		tokens := newTestTokenService(t, -time.Minute, 15*time.Minute, 24*time.Hour)
		activation := auth.NewActivation(store, tokens, auth.NewPasswordHasher(bcrypt.MinCost))

		token, err := activation.Submit(context.Background(), validRegistration())
		require.NoError(t, err)

		_, err = activation.Redeem(context.Background(), token)
		require.ErrorIs(t, err, auth.ErrExpiredToken)
		require.Zero(t, store.Count())
	})

	t.Run("tampered token fails", func(t *testing.T) {
		store := userfake.NewFakeUserRepo()
		activation := newActivation(t, store)

		token, err := activation.Submit(context.Background(), validRegistration())
		require.NoError(t, err)

		_, err = activation.Redeem(context.Background(), tamper(token))
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

// Two tokens carrying the same email can both exist; the store's atomic
// insert decides the race, so exactly one redemption wins.
func TestActivation_ConcurrentRedeem(t *testing.T) {
	store := userfake.NewFakeUserRepo()
	activation := newActivation(t, store)

	first, err := activation.Submit(context.Background(), validRegistration())
	require.NoError(t, err)
	second, err := activation.Submit(context.Background(), validRegistration())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, token := range []string{first, second} {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			_, errs[i] = activation.Redeem(context.Background(), token)
		}(i, token)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, user.ErrDuplicateEmail):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, duplicates)
	require.Equal(t, 1, store.Count())
}
