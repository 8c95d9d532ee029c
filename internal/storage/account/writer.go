package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

var insertColumns = []string{
	"user_id", "name", "account_type", "initial_balance", "closing_day", "due_day",
}

var _ IAccountWriter = (*Writer)(nil)

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

// Insert creates an account row and returns it.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into("accounts", insertColumns...),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			create.Type,
			create.InitialBalance,
			create.ClosingDay,
			create.DueDay,
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteByID removes one of the user's accounts and reports the number of
// rows removed.
func (w *Writer) DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
