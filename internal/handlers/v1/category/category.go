package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/auth"
	"github.com/harborview-labs/finance-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Icon      string `json:"icon,omitempty" doc:"Icon slug"`
	Color     string `json:"color,omitempty" doc:"#RRGGBB hex color"`
	Type      string `json:"type" doc:"INCOME or EXPENSE"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(cat service.Category) Category {
	return Category{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Icon:      cat.Icon,
		Color:     cat.Color,
		Type:      string(cat.Type),
		CreatedAt: cat.CreatedAt.Format(time.RFC3339),
	}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}
