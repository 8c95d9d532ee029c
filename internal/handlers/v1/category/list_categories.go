package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/category"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Type string `query:"type" doc:"Only categories of this type (INCOME or EXPENSE)"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"The user's categories ordered by name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID, categoryType *category.Type) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns the user's categories, optionally narrowed to one type.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var categoryType *category.Type
	if input.Type != "" {
		parsed := category.Type(input.Type)
		if !category.ValidType(parsed) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type")
		}
		categoryType = &parsed
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID, categoryType)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, cat := range categories {
		resp.Categories[i] = fromService(cat)
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
