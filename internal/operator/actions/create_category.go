package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/category"
)

// CreateCategory creates a category for the user. A duplicate (name, type)
// pair surfaces as category.ErrDuplicate.
type CreateCategory struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string
	Type   category.Type

	// Created holds the inserted row after Perform.
	Created *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Category.Insert(ctx, &category.CategoryCreate{
		UserID: a.UserID,
		Name:   a.Name,
		Icon:   a.Icon,
		Color:  a.Color,
		Type:   a.Type,
	})
	if err != nil {
		return err
	}

	a.Created = row
	return nil
}
