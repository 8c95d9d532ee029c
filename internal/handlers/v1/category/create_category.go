package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/category"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Category name"`
	Icon  string `json:"icon,omitempty" maxLength:"50" doc:"Icon slug"`
	Color string `json:"color,omitempty" pattern:"^#[0-9A-Fa-f]{6}$" doc:"#RRGGBB hex color"`
	Type  string `json:"type" required:"true" enum:"INCOME,EXPENSE" doc:"Category type"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, input service.CreateCategoryInput) (*service.Category, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create a category",
		Description:   "Creates a new category. Name and type together must be unique per user.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.CategoryService.CreateCategory(ctx, service.CreateCategoryInput{
		UserID: userID,
		Name:   input.Body.Name,
		Icon:   input.Body.Icon,
		Color:  input.Body.Color,
		Type:   category.Type(input.Body.Type),
	})
	if err != nil {
		if errors.Is(err, category.ErrDuplicate) {
			return nil, huma.NewError(http.StatusConflict, "category already exists", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
