package user

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// User represents a user record. APIToken is the opaque credential presented
// in the Authorization header.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	APIToken     string    `db:"api_token"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for inserting a user row.
type UserCreate struct {
	Email        string
	PasswordHash string
	APIToken     string
}

// IUserReader defines read-side user storage operations.
type IUserReader interface {
	FindByToken(ctx context.Context, token string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// IUserWriter defines user storage operations that run inside a database
// transaction.
type IUserWriter interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
}
