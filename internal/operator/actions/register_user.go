package actions

import (
	"context"

	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

// RegisterUser creates a user row. Password hashing and token generation
// happen in the caller; the action only persists. An email collision
// surfaces as user.ErrDuplicateEmail.
type RegisterUser struct {
	Email        string
	PasswordHash string
	APIToken     string

	// Created holds the inserted row after Perform.
	Created *user.User
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.User.Insert(ctx, &user.UserCreate{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		APIToken:     a.APIToken,
	})
	if err != nil {
		return err
	}

	a.Created = row
	return nil
}
