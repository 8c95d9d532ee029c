package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	Type      category.Type
	CreatedAt time.Time
}

// CreateCategoryInput carries everything needed to create a category.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string
	Type   category.Type
}

func categoryFromStorage(row *category.Category) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Icon:      row.Icon,
		Color:     row.Color,
		Type:      row.Type,
		CreatedAt: row.CreatedAt,
	}
}

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, proc processor) *CategoryService {
	return &CategoryService{storage: store, processor: proc}
}

// CreateCategory creates a new category and returns it. A duplicate
// (name, type) pair for the user surfaces category.ErrDuplicate.
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	action := &actions.CreateCategory{
		UserID: input.UserID,
		Name:   input.Name,
		Icon:   input.Icon,
		Color:  input.Color,
		Type:   input.Type,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	converted := categoryFromStorage(action.Created)
	return &converted, nil
}

// ListCategories returns the user's categories ordered by name, optionally
// narrowed to one type.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, categoryType *category.Type) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, userID, &category.CategoryFilter{Type: categoryType})
	if err != nil {
		return nil, err
	}

	convertedCategories := make([]Category, len(rows))
	for i, row := range rows {
		convertedCategories[i] = categoryFromStorage(row)
	}
	return convertedCategories, nil
}

// DeleteCategory removes a category. Categories with transactions are
// guarded and surface actions.ErrCategoryHasTransactions.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteCategory{
		UserID:     userID,
		CategoryID: id,
	})
}
