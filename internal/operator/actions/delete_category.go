package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/storage"
)

// DeleteCategory removes a category that no transactions reference.
type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.Transaction.CountByCategory(ctx, a.UserID, a.CategoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasTransactions
	}

	deleted, err := writer.Category.DeleteByID(ctx, a.UserID, a.CategoryID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
