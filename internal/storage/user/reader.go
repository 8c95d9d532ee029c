package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{
	"id", "email", "password_hash", "api_token", "created_at",
}

var _ IUserReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByToken resolves an API token to its user. Returns (nil, nil) for an
// unknown token.
func (r *Reader) FindByToken(ctx context.Context, token string) (*User, error) {
	return r.findBy(ctx, "api_token", token)
}

// FindByEmail retrieves a user by email. Returns (nil, nil) for an unknown
// email.
func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *Reader) findBy(ctx context.Context, column, value string) (*User, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("users"),
		sm.Where(psql.Quote(column).EQ(psql.Arg(value))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
