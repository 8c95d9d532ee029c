package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage     *storage.Storage
	processor   processor
	defaultPaid bool
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, proc processor, defaultPaid bool) *TransactionService {
	return &TransactionService{
		storage:     store,
		processor:   proc,
		defaultPaid: defaultPaid,
	}
}

// CreateTransaction creates a transaction, or a whole installment series when
// the input asks for one, and returns the created rows in installment order.
func (s *TransactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) ([]Transaction, error) {
	action := &actions.CreateTransaction{
		UserID:           input.UserID,
		AccountID:        input.AccountID,
		CategoryID:       input.CategoryID,
		Type:             input.Type,
		Description:      input.Description,
		Notes:            input.Notes,
		Date:             input.Date,
		Value:            input.Value,
		InstallmentValue: input.InstallmentValue,
		InstallmentTotal: input.InstallmentTotal,
		Paid:             input.Paid,
		DefaultPaid:      s.defaultPaid,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := make([]Transaction, len(action.Created))
	for i, row := range action.Created {
		created[i] = transactionFromStorage(row)
	}
	return created, nil
}

// GetTransaction retrieves a transaction by ID. Returns nil when the user has
// no such transaction.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	converted := transactionFromStorage(row)
	return &converted, nil
}

// DeleteSeries removes the installment series the transaction belongs to and
// returns the number of rows removed. A transaction outside any series counts
// as a one-member series.
func (s *TransactionService) DeleteSeries(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	action := &actions.DeleteTransactionSeries{
		UserID:        userID,
		TransactionID: id,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Deleted, nil
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, listFilter TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &transaction.TransactionFilter{
		AccountID:       listFilter.AccountID,
		CategoryID:      listFilter.CategoryID,
		Type:            listFilter.Type,
		Paid:            listFilter.Paid,
		StartDate:       listFilter.StartDate,
		EndDate:         listFilter.EndDate,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}

// Summarize returns the user's income and expense totals over the period.
// Nil bounds leave that side of the period open.
func (s *TransactionService) Summarize(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*Summary, error) {
	totals, err := s.storage.Transactions.Summarize(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalIncome:  totals.TotalIncome,
		TotalExpense: totals.TotalExpense,
		Balance:      totals.TotalIncome.Sub(totals.TotalExpense),
	}, nil
}
