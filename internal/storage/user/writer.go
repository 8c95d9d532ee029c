package user

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

const uniqueViolationCode = "23505"

var insertColumns = []string{
	"email", "password_hash", "api_token",
}

var _ IUserWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a user row and returns it. An email collision surfaces as
// ErrDuplicateEmail.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", insertColumns...),
		im.Values(psql.Arg(
			create.Email,
			create.PasswordHash,
			create.APIToken,
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[User]())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &row, nil
}
