package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/auth"
	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage"
)

// ErrInvalidCredentials is returned on login with an unknown email or a
// wrong password. The two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// User represents a user in the service layer. The password hash never
// leaves the storage and auth layers.
type User struct {
	ID        uuid.UUID
	Email     string
	APIToken  string
	CreatedAt time.Time
}

// UserService handles registration and login.
type UserService struct {
	storage   *storage.Storage
	processor processor
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, proc processor) *UserService {
	return &UserService{storage: store, processor: proc}
}

// Register creates a user with a hashed password and a fresh API token.
// A taken email surfaces user.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, email, password string) (*User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	token, err := auth.NewToken()
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		Email:        email,
		PasswordHash: hash,
		APIToken:     token,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &User{
		ID:        action.Created.ID,
		Email:     action.Created.Email,
		APIToken:  action.Created.APIToken,
		CreatedAt: action.Created.CreatedAt,
	}, nil
}

// Login checks the password against the stored hash and returns the user,
// including the API token to present on subsequent requests.
func (s *UserService) Login(ctx context.Context, email, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(row.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &User{
		ID:        row.ID,
		Email:     row.Email,
		APIToken:  row.APIToken,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Authenticate resolves an API token to a user. Returns nil when the token
// matches nobody.
func (s *UserService) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, nil
	}

	row, err := s.storage.Users.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	return &User{
		ID:        row.ID,
		Email:     row.Email,
		APIToken:  row.APIToken,
		CreatedAt: row.CreatedAt,
	}, nil
}
