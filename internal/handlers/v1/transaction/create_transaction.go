package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
// Setting installmentTotal above 1 creates a monthly installment series:
// value is split across the series, or installmentValue is applied to each
// installment as-is.
type CreateTransactionBody struct {
	AccountID        string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID       string `json:"categoryID,omitempty" doc:"Category UUID"`
	Type             string `json:"type" required:"true" enum:"INCOME,EXPENSE,TRANSFER" doc:"Transaction type"`
	Description      string `json:"description" required:"true" minLength:"1" maxLength:"255" doc:"Description of the transaction"`
	Notes            string `json:"notes,omitempty" maxLength:"2000" doc:"Free-form notes"`
	Date             string `json:"date,omitempty" doc:"Transaction date (YYYY-MM-DD), defaults to today"`
	Value            string `json:"value,omitempty" doc:"Total decimal value"`
	InstallmentValue string `json:"installmentValue,omitempty" doc:"Fixed per-installment value, takes precedence over value"`
	InstallmentTotal int    `json:"installmentTotal,omitempty" minimum:"0" maximum:"360" doc:"Number of monthly installments"`
	Paid             *bool  `json:"paid,omitempty" doc:"Settled flag, defaults server-side; ignored for installments"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a
// transaction. Created holds one row, or the whole series in order.
type CreateTransactionResponseBody struct {
	Created []Transaction `json:"created" doc:"Created transactions in installment order"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, input service.CreateTransactionInput) ([]service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction, or an installment series when installmentTotal is above 1.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(userID uuid.UUID, input *CreateTransactionInput) (service.CreateTransactionInput, error) {
	parsed := service.CreateTransactionInput{
		UserID:           userID,
		Type:             transaction.Type(input.Body.Type),
		Description:      input.Body.Description,
		Notes:            input.Body.Notes,
		InstallmentTotal: input.Body.InstallmentTotal,
		Paid:             input.Body.Paid,
	}

	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return parsed, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	parsed.AccountID = accountID

	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return parsed, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		parsed.CategoryID = &categoryID
	}

	if input.Body.Value == "" && input.Body.InstallmentValue == "" {
		return parsed, huma.NewError(http.StatusBadRequest, "one of value or installmentValue is required")
	}

	if input.Body.Value != "" {
		value, err := decimal.NewFromString(input.Body.Value)
		if err != nil {
			return parsed, huma.NewError(http.StatusBadRequest, "invalid value", err)
		}
		parsed.Value = &value
	}

	if input.Body.InstallmentValue != "" {
		if input.Body.InstallmentTotal < 2 {
			return parsed, huma.NewError(http.StatusBadRequest, "installmentValue requires installmentTotal of at least 2")
		}
		installmentValue, err := decimal.NewFromString(input.Body.InstallmentValue)
		if err != nil {
			return parsed, huma.NewError(http.StatusBadRequest, "invalid installmentValue", err)
		}
		parsed.InstallmentValue = &installmentValue
	}

	if input.Body.Date != "" {
		date, err := time.Parse(dateFormat, input.Body.Date)
		if err != nil {
			return parsed, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		parsed.Date = date
	} else {
		now := time.Now().UTC()
		parsed.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	return parsed, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := parseCreateTransactionInput(userID, input)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.CreateTransaction(ctx, parsed)
	if err != nil {
		switch {
		case errors.Is(err, actions.ErrAccountNotFound):
			return nil, huma.NewError(http.StatusNotFound, "account not found", err)
		case errors.Is(err, actions.ErrCategoryNotFound):
			return nil, huma.NewError(http.StatusNotFound, "category not found", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
		}
	}

	resp := CreateTransactionResponseBody{Created: make([]Transaction, len(created))}
	for i, tx := range created {
		resp.Created[i] = fromService(tx)
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: resp}, nil
}
