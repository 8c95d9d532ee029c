package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{
	"id", "user_id", "account_id", "category_id", "description", "value",
	"transaction_date", "paid", "transaction_type", "installment_group_id",
	"installment_current", "installment_total", "notes", "created_at",
}

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves one of the user's transactions. Returns (nil, nil) when
// no such row exists.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the user's transactions matching the filter, newest first.
// When a limit is set, one extra row is fetched so callers can detect a next
// page.
func (r *Reader) List(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}

	if filter != nil {
		if filter.AccountID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(*filter.Type))))
		}
		if filter.Paid != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("paid").EQ(psql.Arg(*filter.Paid))))
		}
		if filter.StartDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.StartDate))))
		}
		if filter.EndDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*filter.EndDate))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	queryMods = append(queryMods,
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Summarize computes the user's income and expense totals, optionally bounded
// to a date range.
func (r *Reader) Summarize(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*Summary, error) {
	query := `SELECT
		COALESCE(SUM(value) FILTER (WHERE transaction_type = 'INCOME'), 0) AS total_income,
		COALESCE(SUM(value) FILTER (WHERE transaction_type = 'EXPENSE'), 0) AS total_expense
	FROM transactions
	WHERE user_id = ?`
	args := []any{userID}

	if startDate != nil && endDate != nil {
		query += " AND transaction_date BETWEEN ? AND ?"
		args = append(args, *startDate, *endDate)
	}

	summary, err := bob.One(ctx, r.exec, psql.RawQuery(query, args...), scan.StructMapper[Summary]())
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// CountByAccount returns how many of the user's transactions reference the
// account.
func (r *Reader) CountByAccount(ctx context.Context, userID, accountID uuid.UUID) (int64, error) {
	return r.count(ctx, userID, "account_id", accountID)
}

// CountByCategory returns how many of the user's transactions reference the
// category.
func (r *Reader) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	return r.count(ctx, userID, "category_id", categoryID)
}

func (r *Reader) count(ctx context.Context, userID uuid.UUID, column string, id uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote(column).EQ(psql.Arg(id))),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}
