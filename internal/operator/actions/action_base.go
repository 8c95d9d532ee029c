package actions

import (
	"context"
	"errors"

	"github.com/harborview-labs/finance-server/internal/storage"
)

// IAction is a unit of work the operator runs inside one database
// transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Sentinel errors the handler layer maps to HTTP statuses.
var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrAccountHasTransactions  = errors.New("account has transactions and cannot be deleted")
	ErrCategoryHasTransactions = errors.New("category has transactions and cannot be deleted")
	ErrCreditCardBillingDays   = errors.New("credit card accounts require closing and due days")
)
