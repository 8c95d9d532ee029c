package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/category/{id}",
		Summary:       "Delete a category",
		Description:   "Deletes a category. Categories that still have transactions cannot be deleted.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	if err := h.CategoryService.DeleteCategory(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, actions.ErrCategoryNotFound):
			return nil, huma.NewError(http.StatusNotFound, "category not found", err)
		case errors.Is(err, actions.ErrCategoryHasTransactions):
			return nil, huma.NewError(http.StatusConflict, "category has transactions", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to delete category", err)
		}
	}

	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
