package category

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

const uniqueViolationCode = "23505"

var insertColumns = []string{
	"user_id", "name", "icon", "color", "category_type",
}

var _ ICategoryWriter = (*Writer)(nil)

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

// Insert creates a category row and returns it. A (user, name, type)
// collision surfaces as ErrDuplicate.
func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", insertColumns...),
		im.Values(psql.Arg(
			create.UserID,
			create.Name,
			create.Icon,
			create.Color,
			create.Type,
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Category]())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &row, nil
}

// DeleteByID removes one of the user's categories and reports the number of
// rows removed.
func (w *Writer) DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
