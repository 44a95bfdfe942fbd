// Package userfake provides an in-memory user store for tests.
package userfake

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/juwono136/go-user-service/internal/user"
)

// FakeUserRepo is an in-memory stand-in for the Postgres repository.
// InsertUnique holds the lock across its check and insert, mirroring
// the atomicity the real repository gets from the unique index on
// email.
type FakeUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *FakeUserRepo) InsertUnique(ctx context.Context, newUser *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[newUser.Email]; exists {
		return nil, user.ErrDuplicateEmail
	}

	stored := *newUser
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt

	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	result := stored
	return &result, nil
}

func (r *FakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}

	result := *r.byID[id]
	return &result, nil
}

func (r *FakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}

	result := *stored
	return &result, nil
}

func (r *FakeUserRepo) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}

	for column, value := range fields {
		switch column {
		case "name":
			stored.Name = value
		case "personal_id":
			stored.PersonalID = value
		case "address":
			stored.Address = value
		case "phone_number":
			stored.PhoneNumber = value
		case "user_image":
			stored.UserImage = value
		}
	}
	stored.UpdatedAt = time.Now()

	result := *stored
	return &result, nil
}

// Count reports how many accounts have been persisted.
func (r *FakeUserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}
