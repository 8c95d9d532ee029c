package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/harborview-labs/finance-server/internal/storage/account"
	"github.com/harborview-labs/finance-server/internal/storage/category"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

// Tx is the transaction handle a Writer commits or rolls back.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the per-entity write stores over one database transaction.
// Everything performed through it becomes visible atomically on Commit.
type Writer struct {
	tx          Tx
	Transaction transaction.ITransactionWriter
	Account     account.IAccountWriter
	Category    category.ICategoryWriter
	User        user.IUserWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transaction.NewWriter(tx),
		Account:     account.NewWriter(tx),
		Category:    category.NewWriter(tx),
		User:        user.NewWriter(tx),
	}
}

// NewWriterWithStores assembles a Writer over explicit stores; tests use it
// to substitute mocks.
func NewWriterWithStores(
	tx Tx,
	transactionWriter transaction.ITransactionWriter,
	accountWriter account.IAccountWriter,
	categoryWriter category.ICategoryWriter,
	userWriter user.IUserWriter,
) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transactionWriter,
		Account:     accountWriter,
		Category:    categoryWriter,
		User:        userWriter,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
