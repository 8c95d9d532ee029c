package service

import (
	"context"

	"github.com/harborview-labs/finance-server/internal/config"
	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage"
)

// processor runs an action inside a single database transaction and blocks
// until it has committed or rolled back. *operator.OperatorDelegator
// satisfies it; tests substitute their own.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Category    *CategoryService
	User        *UserService
}

// NewService creates a new Service over the given storage and processor.
func NewService(store *storage.Storage, proc processor, env *config.Config) *Service {
	return &Service{
		Transaction: NewTransactionService(store, proc, env.DefaultTransactionPaid),
		Account:     NewAccountService(store, proc),
		Category:    NewCategoryService(store, proc),
		User:        NewUserService(store, proc),
	}
}
