package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/harborview-labs/finance-server/internal/logging"
	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/account"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Account name"`
	Type           string `json:"type" required:"true" enum:"CASH,CHECKING,SAVINGS,INVESTMENT,CREDIT_CARD" doc:"Account type"`
	InitialBalance string `json:"initialBalance,omitempty" doc:"Opening balance (e.g. '1234.56'), defaults to 0"`
	ClosingDay     *int16 `json:"closingDay,omitempty" minimum:"1" maximum:"31" doc:"Statement closing day, required for credit cards"`
	DueDay         *int16 `json:"dueDay,omitempty" minimum:"1" maximum:"31" doc:"Payment due day, required for credit cards"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, input service.CreateAccountInput) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create an account",
		Description:   "Creates a new account. Credit card accounts must state their billing days.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	initialBalanceStr := input.Body.InitialBalance
	if initialBalanceStr == "" {
		initialBalanceStr = "0"
	}
	initialBalance, err := decimal.NewFromString(initialBalanceStr)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid initialBalance", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, service.CreateAccountInput{
		UserID:         userID,
		Name:           input.Body.Name,
		Type:           account.Type(input.Body.Type),
		InitialBalance: initialBalance,
		ClosingDay:     input.Body.ClosingDay,
		DueDay:         input.Body.DueDay,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, actions.ErrCreditCardBillingDays) {
			return nil, huma.NewError(http.StatusBadRequest, "credit card accounts require closingDay and dueDay", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", created.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
