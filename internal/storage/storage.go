package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/harborview-labs/finance-server/internal/config"
	"github.com/harborview-labs/finance-server/internal/storage/account"
	"github.com/harborview-labs/finance-server/internal/storage/category"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

// Storage bundles the database handle with the read-side tables. Writes go
// through Write, which opens a database transaction.
type Storage struct {
	db bob.DB

	Transactions transaction.ITransactionReader
	Accounts     account.IAccountReader
	Categories   category.ICategoryReader
	Users        user.IUserReader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an existing connection, used by integration tests.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		db:           bobDB,
		Transactions: transaction.NewReader(bobDB),
		Accounts:     account.NewReader(bobDB),
		Categories:   category.NewReader(bobDB),
		Users:        user.NewReader(bobDB),
	}
}

// Write begins a database transaction and returns a Writer scoped to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
