package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, email, password string) (*service.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*service.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func newTestAPI(t *testing.T, register func(api huma.API)) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	register(api)
	return api
}

func TestHTTP_Register_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, "ana@example.com", "hunter22hunter22").
		Return(&service.User{
			ID:       userID,
			Email:    "ana@example.com",
			APIToken: "token-123",
		}, nil)

	api := newTestAPI(t, func(api huma.API) {
		NewRegisterHandler(mockSvc).Register(api)
	})
	resp := api.Post("/v1/user/register", RegisterBody{
		Email:    "ana@example.com",
		Password: "hunter22hunter22",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.ID)
	assert.Equal(t, "token-123", body.APIToken)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Register_ShortPassword(t *testing.T) {
	mockSvc := new(mockUserService)

	// Huma minLength validation rejects the request before the handler runs.
	api := newTestAPI(t, func(api huma.API) {
		NewRegisterHandler(mockSvc).Register(api)
	})
	resp := api.Post("/v1/user/register", RegisterBody{
		Email:    "ana@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestHTTP_Register_DuplicateEmail(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Register", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, user.ErrDuplicateEmail)

	api := newTestAPI(t, func(api huma.API) {
		NewRegisterHandler(mockSvc).Register(api)
	})
	resp := api.Post("/v1/user/register", RegisterBody{
		Email:    "ana@example.com",
		Password: "hunter22hunter22",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Login_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, "ana@example.com", "hunter22hunter22").
		Return(&service.User{
			ID:       uuid.Must(uuid.NewV4()),
			Email:    "ana@example.com",
			APIToken: "token-123",
		}, nil)

	api := newTestAPI(t, func(api huma.API) {
		NewLoginHandler(mockSvc).Register(api)
	})
	resp := api.Post("/v1/user/login", LoginBody{
		Email:    "ana@example.com",
		Password: "hunter22hunter22",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "token-123", body.APIToken)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidCredentials)

	api := newTestAPI(t, func(api huma.API) {
		NewLoginHandler(mockSvc).Register(api)
	})
	resp := api.Post("/v1/user/login", LoginBody{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
