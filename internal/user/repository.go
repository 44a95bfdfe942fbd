package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/juwono136/go-user-service/internal/database"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Repository handles user persistence on Postgres via bun.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// InsertUnique inserts a new user, relying on the unique index on
// email. A constraint violation maps to ErrDuplicateEmail, which makes
// the insert the atomic guard against concurrent activations.
func (r *Repository) InsertUnique(ctx context.Context, newUser *User) (*User, error) {
	dbUser := &database.User{
		PersonalID:  newUser.PersonalID,
		Name:        newUser.Name,
		Email:       newUser.Email,
		Password:    newUser.Password,
		Address:     newUser.Address,
		PhoneNumber: newUser.PhoneNumber,
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// FindByEmail retrieves a user by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", email).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// UpdateByID applies the given column values to a user and returns the
// updated record. Callers are responsible for allow-listing the fields
// before they reach this method.
func (r *Repository) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]string) (*User, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	query := r.db.NewUpdate().
		Model((*database.User)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", id)

	for column, value := range fields {
		query = query.Set("? = ?", bun.Ident(column), value)
	}

	result, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindByID(ctx, id)
}

// mapDBUserToModel converts the bun table model to the domain model.
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:          dbu.ID,
		PersonalID:  dbu.PersonalID,
		Name:        dbu.Name,
		Email:       dbu.Email,
		Password:    dbu.Password,
		Address:     dbu.Address,
		PhoneNumber: dbu.PhoneNumber,
		UserImage:   dbu.UserImage,
		CreatedAt:   dbu.CreatedAt,
		UpdatedAt:   dbu.UpdatedAt,
	}
}
