package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a durable account. A row only ever exists after a signed
// activation token has been redeemed; signup alone never creates one.
type User struct {
	ID          uuid.UUID `json:"id"`
	PersonalID  string    `json:"personal_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // bcrypt hash, never serialized
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	UserImage   string    `json:"user_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
