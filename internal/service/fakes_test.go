package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage/account"
	"github.com/harborview-labs/finance-server/internal/storage/category"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

// fakeProcessor records the action it receives and lets the test populate the
// action's result fields through onProcess, standing in for the operator.
type fakeProcessor struct {
	err        error
	onProcess  func(action actions.IAction)
	lastAction actions.IAction
}

func (p *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	p.lastAction = action
	if p.err != nil {
		return p.err
	}
	if p.onProcess != nil {
		p.onProcess(action)
	}
	return nil
}

type fakeTransactionReader struct {
	findRow *transaction.Transaction
	rows    []*transaction.Transaction
	summary *transaction.Summary
	err     error

	gotUserID uuid.UUID
	gotFilter *transaction.TransactionFilter
}

func (r *fakeTransactionReader) FindByID(_ context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	r.gotUserID = userID
	return r.findRow, r.err
}

func (r *fakeTransactionReader) List(_ context.Context, userID uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	r.gotUserID = userID
	r.gotFilter = filter
	return r.rows, r.err
}

func (r *fakeTransactionReader) Summarize(_ context.Context, userID uuid.UUID, _, _ *time.Time) (*transaction.Summary, error) {
	r.gotUserID = userID
	return r.summary, r.err
}

type fakeAccountReader struct {
	findRow *account.Account
	rows    []*account.AccountWithBalance
	err     error
}

func (r *fakeAccountReader) FindByID(context.Context, uuid.UUID, uuid.UUID) (*account.Account, error) {
	return r.findRow, r.err
}

func (r *fakeAccountReader) List(context.Context, uuid.UUID) ([]*account.AccountWithBalance, error) {
	return r.rows, r.err
}

type fakeCategoryReader struct {
	findRow   *category.Category
	rows      []*category.Category
	err       error
	gotFilter *category.CategoryFilter
}

func (r *fakeCategoryReader) FindByID(context.Context, uuid.UUID, uuid.UUID) (*category.Category, error) {
	return r.findRow, r.err
}

func (r *fakeCategoryReader) List(_ context.Context, _ uuid.UUID, filter *category.CategoryFilter) ([]*category.Category, error) {
	r.gotFilter = filter
	return r.rows, r.err
}

type fakeUserReader struct {
	byToken *user.User
	byEmail *user.User
	err     error
}

func (r *fakeUserReader) FindByToken(context.Context, string) (*user.User, error) {
	return r.byToken, r.err
}

func (r *fakeUserReader) FindByEmail(context.Context, string) (*user.User, error) {
	return r.byEmail, r.err
}
