package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/storage"
)

// DeleteTransactionSeries removes every member of the installment series the
// given transaction belongs to, in one statement. A transaction with no group
// is treated as a one-member series: just that row is removed. Invoking the
// action on any member of a group yields the same final state.
type DeleteTransactionSeries struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID

	// Deleted holds the number of rows removed after Perform.
	Deleted int64
}

func (a *DeleteTransactionSeries) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.FindByID(ctx, a.UserID, a.TransactionID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrTransactionNotFound
	}

	if row.InstallmentGroupID == nil {
		a.Deleted, err = writer.Transaction.DeleteByID(ctx, a.UserID, a.TransactionID)
		return err
	}

	a.Deleted, err = writer.Transaction.DeleteByGroup(ctx, a.UserID, *row.InstallmentGroupID)
	return err
}
