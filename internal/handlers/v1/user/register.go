package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

// User is the API response model for a user. The API token is returned on
// register and login only.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"Email address"`
	APIToken  string `json:"apiToken" doc:"Opaque token to present in the Authorization header"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Email:     u.Email,
		APIToken:  u.APIToken,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"8" maxLength:"72" doc:"Password"`
}

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registering a user.
type RegisterOutput struct {
	Status int
	Body   User
}

// registrar is the interface for registering users.
type registrar interface {
	Register(ctx context.Context, email, password string) (*service.User, error)
}

// RegisterHandler handles POST /v1/user/register.
type RegisterHandler struct {
	UserService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

// Register registers the register endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/v1/user/register",
		Summary:       "Register",
		Description:   "Creates a user account and returns its API token.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	created, err := h.UserService.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, huma.NewError(http.StatusConflict, "email already registered", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register", err)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
