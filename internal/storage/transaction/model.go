package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type classifies a transaction.
type Type string

const (
	TypeIncome   Type = "INCOME"
	TypeExpense  Type = "EXPENSE"
	TypeTransfer Type = "TRANSFER"
)

// ValidType reports whether t is one of the known transaction types.
func ValidType(t Type) bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}

// Transaction represents a transaction record. The three installment fields
// are all nil for a standalone transaction and all set for a member of an
// installment series (enforced by a table check constraint).
type Transaction struct {
	ID                 uuid.UUID       `db:"id"`
	UserID             uuid.UUID       `db:"user_id"`
	AccountID          uuid.UUID       `db:"account_id"`
	CategoryID         *uuid.UUID      `db:"category_id"`
	Description        string          `db:"description"`
	Value              decimal.Decimal `db:"value"`
	Date               time.Time       `db:"transaction_date"`
	Paid               bool            `db:"paid"`
	Type               Type            `db:"transaction_type"`
	InstallmentGroupID *uuid.UUID      `db:"installment_group_id"`
	InstallmentCurrent *int            `db:"installment_current"`
	InstallmentTotal   *int            `db:"installment_total"`
	Notes              string          `db:"notes"`
	CreatedAt          time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a transaction row.
type TransactionCreate struct {
	UserID             uuid.UUID
	AccountID          uuid.UUID
	CategoryID         *uuid.UUID
	Description        string
	Value              decimal.Decimal
	Date               time.Time
	Paid               bool
	Type               Type
	InstallmentGroupID *uuid.UUID
	InstallmentCurrent *int
	InstallmentTotal   *int
	Notes              string
}

// TransactionFilter specifies filters for listing a user's transactions.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Type            *Type
	Paid            *bool
	StartDate       *time.Time
	EndDate         *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// Summary holds the aggregate totals behind the dashboard endpoint.
type Summary struct {
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
}

// ITransactionReader defines read-side transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionReader interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
	Summarize(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*Summary, error)
}

// ITransactionWriter defines transaction storage operations that run inside a
// database transaction. BulkInsert and DeleteByGroup are the atomicity points
// for installment series: all rows land or none do.
type ITransactionWriter interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	BulkInsert(ctx context.Context, creates []*TransactionCreate) ([]*Transaction, error)
	DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error)
	DeleteByGroup(ctx context.Context, userID, groupID uuid.UUID) (int64, error)
	CountByAccount(ctx context.Context, userID, accountID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)
}
