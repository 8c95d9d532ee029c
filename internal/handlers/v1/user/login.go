package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/harborview-labs/finance-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body User
}

// authenticator is the interface for logging in.
type authenticator interface {
	Login(ctx context.Context, email, password string) (*service.User, error)
}

// LoginHandler handles POST /v1/user/login.
type LoginHandler struct {
	UserService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/v1/user/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns the user's API token.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logged, err := h.UserService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid email or password")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	return &LoginOutput{Body: fromService(*logged)}, nil
}
