package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harborview-labs/finance-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer. The installment
// fields are nil for a standalone transaction.
type Transaction struct {
	ID                 uuid.UUID
	AccountID          uuid.UUID
	CategoryID         *uuid.UUID
	Description        string
	Value              decimal.Decimal
	Date               time.Time
	Paid               bool
	Type               transaction.Type
	InstallmentGroupID *uuid.UUID
	InstallmentCurrent *int
	InstallmentTotal   *int
	Notes              string
	CreatedAt          time.Time
}

// CreateTransactionInput carries everything needed to create a transaction
// or an installment series. When InstallmentTotal is greater than one, the
// create fans out into that many monthly rows: either Value is divided, or
// InstallmentValue is applied to each row as-is.
type CreateTransactionInput struct {
	UserID           uuid.UUID
	AccountID        uuid.UUID
	CategoryID       *uuid.UUID
	Type             transaction.Type
	Description      string
	Notes            string
	Date             time.Time
	Value            *decimal.Decimal
	InstallmentValue *decimal.Decimal
	InstallmentTotal int
	Paid             *bool
}

// TransactionListFilter narrows ListTransactions results.
type TransactionListFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *transaction.Type
	Paid       *bool
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// Summary holds a period's aggregate totals. Balance is income minus expense.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:                 row.ID,
		AccountID:          row.AccountID,
		CategoryID:         row.CategoryID,
		Description:        row.Description,
		Value:              row.Value,
		Date:               row.Date,
		Paid:               row.Paid,
		Type:               row.Type,
		InstallmentGroupID: row.InstallmentGroupID,
		InstallmentCurrent: row.InstallmentCurrent,
		InstallmentTotal:   row.InstallmentTotal,
		Notes:              row.Notes,
		CreatedAt:          row.CreatedAt,
	}
}
