package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, proc processor) *AccountService {
	return &AccountService{storage: store, processor: proc}
}

// CreateAccount creates a new account and returns it.
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccountInput) (*Account, error) {
	action := &actions.CreateAccount{
		UserID:         input.UserID,
		Name:           input.Name,
		Type:           input.Type,
		InitialBalance: input.InitialBalance,
		ClosingDay:     input.ClosingDay,
		DueDay:         input.DueDay,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	// Nothing is booked against a fresh account yet.
	converted := accountFromStorage(action.Created, action.Created.InitialBalance)
	return &converted, nil
}

// GetAccount retrieves an account by ID. Returns nil when the user has no
// such account.
func (s *AccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	converted := accountFromStorage(row, row.InitialBalance)
	return &converted, nil
}

// ListAccounts returns all of the user's accounts with their derived
// balances, ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	convertedAccounts := make([]Account, len(rows))
	for i, row := range rows {
		convertedAccounts[i] = accountFromStorage(&row.Account, row.CurrentBalance)
	}
	return convertedAccounts, nil
}

// DeleteAccount removes an account. Accounts with transactions are guarded
// and surface actions.ErrAccountHasTransactions.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{
		UserID:    userID,
		AccountID: id,
	})
}
