package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/juwono136/go-user-service/internal/auth"
	"github.com/juwono136/go-user-service/internal/email/emailfake"
	"github.com/juwono136/go-user-service/internal/logging"
	"github.com/juwono136/go-user-service/internal/user"
	"github.com/juwono136/go-user-service/internal/user/userfake"
)

const testServerURL = "http://localhost:8080"

func newTestService(t *testing.T) (*auth.Service, *userfake.FakeUserRepo, *emailfake.FakeEmailService) {
	t.Helper()

	store := userfake.NewFakeUserRepo()
	mail := emailfake.NewFakeEmailService()
	tokens := newTestTokenService(t, 24*time.Hour, 15*time.Minute, 24*time.Hour)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	activation := auth.NewActivation(store, tokens, hasher)

	svc := auth.NewService(store, activation, tokens, hasher, mail, logging.NewLogger(true), testServerURL)
	return svc, store, mail
}

// activationTokenFromLink strips the activation URL down to the token.
func activationTokenFromLink(t *testing.T, link string) string {
	t.Helper()
	prefix := testServerURL + "/api/user/activate/"
	require.True(t, strings.HasPrefix(link, prefix), "unexpected activation link %q", link)
	return strings.TrimPrefix(link, prefix)
}

func TestService_SignUp(t *testing.T) {
	t.Run("accepts a valid registration without persisting it", func(t *testing.T) {
		svc, store, mail := newTestService(t)

		err := svc.SignUp(context.Background(), validRegistration())
		require.NoError(t, err)
		require.Zero(t, store.Count())

		sent, ok := mail.WaitForMail(time.Second)
		require.True(t, ok, "expected an activation mail")
		require.Equal(t, "a@b.com", sent.To)
		require.NotEmpty(t, activationTokenFromLink(t, sent.Link))
	})

	t.Run("mail failure does not fail the signup", func(t *testing.T) {
		svc, store, mail := newTestService(t)
		mail.Err = errors.New("smtp unreachable")

		err := svc.SignUp(context.Background(), validRegistration())
		require.NoError(t, err)
		require.Zero(t, store.Count())

		_, ok := mail.WaitForMail(time.Second)
		require.True(t, ok)
	})

	t.Run("rejects an invalid registration before any side effect", func(t *testing.T) {
		svc, store, mail := newTestService(t)

		reg := validRegistration()
		reg.Password = "weak"
		reg.ConfirmPassword = "weak"

		err := svc.SignUp(context.Background(), reg)
		require.ErrorIs(t, err, auth.ErrWeakPassword)
		require.Zero(t, store.Count())

		_, ok := mail.WaitForMail(50 * time.Millisecond)
		require.False(t, ok, "no mail should be sent for a rejected signup")
	})
}

func TestService_SignIn(t *testing.T) {
	signUpAndActivate := func(t *testing.T, svc *auth.Service, mail *emailfake.FakeEmailService) *user.User {
		t.Helper()
		require.NoError(t, svc.SignUp(context.Background(), validRegistration()))
		sent, ok := mail.WaitForMail(time.Second)
		require.True(t, ok)
		account, err := svc.Activate(context.Background(), activationTokenFromLink(t, sent.Link))
		require.NoError(t, err)
		return account
	}

	t.Run("succeeds with correct credentials after activation", func(t *testing.T) {
		svc, _, mail := newTestService(t)
		activated := signUpAndActivate(t, svc, mail)

		tokens, account, err := svc.SignIn(context.Background(), "a@b.com", "Abc123")
		require.NoError(t, err)
		require.Equal(t, activated.ID, account.ID)
		require.NotEmpty(t, tokens.AccessToken)
		require.NotEmpty(t, tokens.RefreshToken)
		require.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	})

	t.Run("fails before activation", func(t *testing.T) {
		svc, _, mail := newTestService(t)
		require.NoError(t, svc.SignUp(context.Background(), validRegistration()))
		mail.WaitForMail(time.Second)

		_, _, err := svc.SignIn(context.Background(), "a@b.com", "Abc123")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc, _, mail := newTestService(t)
		signUpAndActivate(t, svc, mail)

		_, _, unknownErr := svc.SignIn(context.Background(), "nobody@b.com", "Abc123")
		_, _, wrongErr := svc.SignIn(context.Background(), "a@b.com", "Wrong123")

		require.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
		require.ErrorIs(t, wrongErr, auth.ErrInvalidCredentials)
		require.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, _, err := svc.SignIn(context.Background(), "", "Abc123")
		require.ErrorIs(t, err, auth.ErrMissingFields)

		_, _, err = svc.SignIn(context.Background(), "a@b.com", "")
		require.ErrorIs(t, err, auth.ErrMissingFields)
	})
}

func TestService_GetProfile(t *testing.T) {
	t.Run("strips the credential hash", func(t *testing.T) {
		svc, store, _ := newTestService(t)

		created, err := store.InsertUnique(context.Background(), &user.User{
			PersonalID: "BN12363468",
			Name:       "juwono",
			Email:      "a@b.com",
			Password:   "$2a$12$hash",
		})
		require.NoError(t, err)

		profile, err := svc.GetProfile(context.Background(), created.ID)
		require.NoError(t, err)
		require.Empty(t, profile.Password)
		require.Equal(t, "juwono", profile.Name)
		require.Equal(t, "BN12363468", profile.PersonalID)
	})

	t.Run("unknown identity fails with not found", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.GetProfile(context.Background(), uuid.New())
		require.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	seed := func(t *testing.T, store *userfake.FakeUserRepo) *user.User {
		t.Helper()
		created, err := store.InsertUnique(context.Background(), &user.User{
			PersonalID: "BN12363468",
			Name:       "juwono",
			Email:      "a@b.com",
			Password:   "$2a$12$hash",
		})
		require.NoError(t, err)
		return created
	}

	t.Run("applies only allow-listed fields", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		created := seed(t, store)

		updated, err := svc.UpdateProfile(context.Background(), created.ID, map[string]any{
			"password": "x",
			"name":     "Bob",
		})
		require.NoError(t, err)
		require.Equal(t, "Bob", updated.Name)

		// The password field was silently dropped.
		stored, err := store.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		require.Equal(t, "$2a$12$hash", stored.Password)
	})

	t.Run("fails when nothing valid remains after filtering", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		created := seed(t, store)

		_, err := svc.UpdateProfile(context.Background(), created.ID, map[string]any{
			"password": "x",
			"email":    "evil@b.com",
			"role":     "admin",
		})
		require.ErrorIs(t, err, auth.ErrNoValidFields)
	})

	t.Run("non-string values are dropped", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		created := seed(t, store)

		_, err := svc.UpdateProfile(context.Background(), created.ID, map[string]any{
			"name": 42,
		})
		require.ErrorIs(t, err, auth.ErrNoValidFields)
	})

	t.Run("unknown identity fails with not found", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.UpdateProfile(context.Background(), uuid.New(), map[string]any{"name": "Bob"})
		require.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("updated profile never carries the hash", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		created := seed(t, store)

		updated, err := svc.UpdateProfile(context.Background(), created.ID, map[string]any{
			"address": "Jakarta, Indonesia",
		})
		require.NoError(t, err)
		require.Empty(t, updated.Password)
		require.Equal(t, "Jakarta, Indonesia", updated.Address)
	})
}
