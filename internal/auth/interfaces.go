package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/juwono136/go-user-service/internal/user"
)

// UserStore is the persistence contract the auth flows depend on.
// The production implementation is user.Repository on Postgres; tests
// substitute an in-memory fake. InsertUnique must be atomic with its
// uniqueness check so concurrent activations of the same email cannot
// both succeed.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	InsertUnique(ctx context.Context, newUser *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]string) (*user.User, error)
}

// EmailService delivers the activation link. Failures are logged by the
// caller and never abort a signup.
type EmailService interface {
	SendActivationEmail(ctx context.Context, toEmail, activationLink string) error
}
