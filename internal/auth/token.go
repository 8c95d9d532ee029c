package auth

import (
	"github.com/gofrs/uuid/v5"
)

// NewToken issues an opaque API token. Tokens are random, stored alongside the
// user record, and looked up verbatim on each request.
func NewToken() (string, error) {
	token, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return token.String(), nil
}
