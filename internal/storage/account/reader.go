package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{
	"id", "user_id", "name", "account_type", "initial_balance",
	"closing_day", "due_day", "created_at",
}

var _ IAccountReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves one of the user's accounts. Returns (nil, nil) when no
// such row exists.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the user's accounts ordered by name, each annotated with its
// current balance derived from the paid transactions referencing it.
func (r *Reader) List(ctx context.Context, userID uuid.UUID) ([]*AccountWithBalance, error) {
	query := `SELECT
		a.id, a.user_id, a.name, a.account_type, a.initial_balance,
		a.closing_day, a.due_day, a.created_at,
		a.initial_balance
			+ COALESCE(SUM(t.value) FILTER (WHERE t.transaction_type = 'INCOME' AND t.paid), 0)
			- COALESCE(SUM(t.value) FILTER (WHERE t.transaction_type IN ('EXPENSE', 'TRANSFER') AND t.paid), 0)
			AS current_balance
	FROM accounts a
	LEFT JOIN transactions t ON t.account_id = a.id
	WHERE a.user_id = ?
	GROUP BY a.id
	ORDER BY a.name, a.id`

	rows, err := bob.All(ctx, r.exec, psql.RawQuery(query, userID), scan.StructMapper[AccountWithBalance]())
	if err != nil {
		return nil, err
	}

	result := make([]*AccountWithBalance, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
