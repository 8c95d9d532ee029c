package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

var insertColumns = []string{
	"user_id", "account_id", "category_id", "description", "value",
	"transaction_date", "paid", "transaction_type", "installment_group_id",
	"installment_current", "installment_total", "notes",
}

var _ ITransactionWriter = (*Writer)(nil)

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

// Insert creates a single transaction row and returns it.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", insertColumns...),
		im.Values(insertArgs(create)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// BulkInsert creates all rows in one INSERT statement. Within the surrounding
// database transaction either every row lands or none do, so a concurrent
// reader never observes a partial installment series.
func (w *Writer) BulkInsert(ctx context.Context, creates []*TransactionCreate) ([]*Transaction, error) {
	if len(creates) == 0 {
		return nil, nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transactions", insertColumns...),
	}
	for _, create := range creates {
		queryMods = append(queryMods, im.Values(insertArgs(create)))
	}
	queryMods = append(queryMods, im.Returning("*"))

	rows, err := bob.All(ctx, w.tx, psql.Insert(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// DeleteByID removes a single transaction owned by the user and reports the
// number of rows removed (0 when it was already gone).
func (w *Writer) DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByGroup removes every member of an installment series in one
// statement and reports how many rows were removed.
func (w *Writer) DeleteByGroup(ctx context.Context, userID, groupID uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("installment_group_id").EQ(psql.Arg(groupID))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func insertArgs(c *TransactionCreate) bob.Expression {
	return psql.Arg(
		c.UserID,
		c.AccountID,
		c.CategoryID,
		c.Description,
		c.Value,
		c.Date,
		c.Paid,
		c.Type,
		c.InstallmentGroupID,
		c.InstallmentCurrent,
		c.InstallmentTotal,
		c.Notes,
	)
}
