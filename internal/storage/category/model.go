package category

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ErrDuplicate is returned when a user already has a category with the same
// name and type.
var ErrDuplicate = errors.New("category already exists for this user")

// Type classifies a category. Categories only apply to income and expenses;
// transfers are uncategorized.
type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

// ValidType reports whether t is one of the known category types.
func ValidType(t Type) bool {
	return t == TypeIncome || t == TypeExpense
}

// Category represents a category record. Icon is a slug (e.g. "mdi-home")
// and Color is a #RRGGBB hex string.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	Type      Type      `db:"category_type"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for inserting a category row.
type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Icon   string
	Color  string
	Type   Type
}

// CategoryFilter narrows List results.
type CategoryFilter struct {
	Type *Type
}

// ICategoryReader defines read-side category storage operations.
type ICategoryReader interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	List(ctx context.Context, userID uuid.UUID, filter *CategoryFilter) ([]*Category, error)
}

// ICategoryWriter defines category storage operations that run inside a
// database transaction.
type ICategoryWriter interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error)
}
