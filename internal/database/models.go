package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the bun table model for the users table. The email column
// carries a unique index; it is the authoritative guard against two
// concurrent activations of the same address.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	PersonalID  string    `bun:"personal_id,notnull"`
	Name        string    `bun:"name,notnull"`
	Email       string    `bun:"email,notnull,unique"`
	Password    string    `bun:"password,notnull"`
	Address     string    `bun:"address"`
	PhoneNumber string    `bun:"phone_number"`
	UserImage   string    `bun:"user_image"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
