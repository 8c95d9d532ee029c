package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/storage"
)

// DeleteAccount removes an account that no transactions reference.
type DeleteAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.Transaction.CountByAccount(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAccountHasTransactions
	}

	deleted, err := writer.Account.DeleteByID(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrAccountNotFound
	}
	return nil
}
