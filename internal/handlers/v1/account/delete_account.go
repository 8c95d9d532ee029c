package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes an account. Accounts that still have transactions cannot be deleted.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	if err := h.AccountService.DeleteAccount(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, actions.ErrAccountNotFound):
			return nil, huma.NewError(http.StatusNotFound, "account not found", err)
		case errors.Is(err, actions.ErrAccountHasTransactions):
			return nil, huma.NewError(http.StatusConflict, "account has transactions", err)
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to delete account", err)
		}
	}

	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
