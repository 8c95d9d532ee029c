package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/account"
	"github.com/harborview-labs/finance-server/internal/storage/category"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
	"github.com/harborview-labs/finance-server/internal/storage/user"
)

// In-memory stores standing in for the bob-backed writers. They echo inserts
// back with generated IDs so actions behave as they would against Postgres.

type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) Commit(context.Context) error   { t.commits++; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rollbacks++; return nil }

type fakeTransactionStore struct {
	rows map[uuid.UUID]*transaction.Transaction

	insertErr     error
	bulkInsertErr error

	bulkBatches [][]*transaction.TransactionCreate
	insertCalls int
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{rows: make(map[uuid.UUID]*transaction.Transaction)}
}

func (s *fakeTransactionStore) rowFromCreate(c *transaction.TransactionCreate) *transaction.Transaction {
	row := &transaction.Transaction{
		ID:                 uuid.Must(uuid.NewV4()),
		UserID:             c.UserID,
		AccountID:          c.AccountID,
		CategoryID:         c.CategoryID,
		Description:        c.Description,
		Value:              c.Value,
		Date:               c.Date,
		Paid:               c.Paid,
		Type:               c.Type,
		InstallmentGroupID: c.InstallmentGroupID,
		InstallmentCurrent: c.InstallmentCurrent,
		InstallmentTotal:   c.InstallmentTotal,
		Notes:              c.Notes,
		CreatedAt:          time.Now(),
	}
	s.rows[row.ID] = row
	return row
}

func (s *fakeTransactionStore) FindByID(_ context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return nil, nil
	}
	return row, nil
}

func (s *fakeTransactionStore) Insert(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.insertCalls++
	return s.rowFromCreate(create), nil
}

func (s *fakeTransactionStore) BulkInsert(_ context.Context, creates []*transaction.TransactionCreate) ([]*transaction.Transaction, error) {
	if s.bulkInsertErr != nil {
		return nil, s.bulkInsertErr
	}
	s.bulkBatches = append(s.bulkBatches, creates)
	rows := make([]*transaction.Transaction, len(creates))
	for i, create := range creates {
		rows[i] = s.rowFromCreate(create)
	}
	return rows, nil
}

func (s *fakeTransactionStore) DeleteByID(_ context.Context, userID, id uuid.UUID) (int64, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func (s *fakeTransactionStore) DeleteByGroup(_ context.Context, userID, groupID uuid.UUID) (int64, error) {
	var deleted int64
	for id, row := range s.rows {
		if row.UserID == userID && row.InstallmentGroupID != nil && *row.InstallmentGroupID == groupID {
			delete(s.rows, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *fakeTransactionStore) CountByAccount(_ context.Context, userID, accountID uuid.UUID) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if row.UserID == userID && row.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

func (s *fakeTransactionStore) CountByCategory(_ context.Context, userID, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if row.UserID == userID && row.CategoryID != nil && *row.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type fakeAccountStore struct {
	rows map[uuid.UUID]*account.Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{rows: make(map[uuid.UUID]*account.Account)}
}

func (s *fakeAccountStore) add(userID uuid.UUID) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.rows[id] = &account.Account{ID: id, UserID: userID, Name: "Checking", Type: account.TypeChecking}
	return id
}

func (s *fakeAccountStore) FindByID(_ context.Context, userID, id uuid.UUID) (*account.Account, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return nil, nil
	}
	return row, nil
}

func (s *fakeAccountStore) Insert(_ context.Context, create *account.AccountCreate) (*account.Account, error) {
	row := &account.Account{
		ID:             uuid.Must(uuid.NewV4()),
		UserID:         create.UserID,
		Name:           create.Name,
		Type:           create.Type,
		InitialBalance: create.InitialBalance,
		ClosingDay:     create.ClosingDay,
		DueDay:         create.DueDay,
		CreatedAt:      time.Now(),
	}
	s.rows[row.ID] = row
	return row, nil
}

func (s *fakeAccountStore) DeleteByID(_ context.Context, userID, id uuid.UUID) (int64, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

type fakeCategoryStore struct {
	rows map[uuid.UUID]*category.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{rows: make(map[uuid.UUID]*category.Category)}
}

func (s *fakeCategoryStore) add(userID uuid.UUID) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.rows[id] = &category.Category{ID: id, UserID: userID, Name: "Groceries", Type: category.TypeExpense}
	return id
}

func (s *fakeCategoryStore) FindByID(_ context.Context, userID, id uuid.UUID) (*category.Category, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return nil, nil
	}
	return row, nil
}

func (s *fakeCategoryStore) Insert(_ context.Context, create *category.CategoryCreate) (*category.Category, error) {
	for _, row := range s.rows {
		if row.UserID == create.UserID && row.Name == create.Name && row.Type == create.Type {
			return nil, category.ErrDuplicate
		}
	}
	row := &category.Category{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    create.UserID,
		Name:      create.Name,
		Icon:      create.Icon,
		Color:     create.Color,
		Type:      create.Type,
		CreatedAt: time.Now(),
	}
	s.rows[row.ID] = row
	return row, nil
}

func (s *fakeCategoryStore) DeleteByID(_ context.Context, userID, id uuid.UUID) (int64, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

type fakeUserStore struct {
	rows map[string]*user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{rows: make(map[string]*user.User)}
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	row, ok := s.rows[email]
	if !ok {
		return nil, nil
	}
	return row, nil
}

func (s *fakeUserStore) Insert(_ context.Context, create *user.UserCreate) (*user.User, error) {
	if _, ok := s.rows[create.Email]; ok {
		return nil, user.ErrDuplicateEmail
	}
	row := &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        create.Email,
		PasswordHash: create.PasswordHash,
		APIToken:     create.APIToken,
		CreatedAt:    time.Now(),
	}
	s.rows[row.Email] = row
	return row, nil
}

type testStores struct {
	writer       *storage.Writer
	tx           *fakeTx
	transactions *fakeTransactionStore
	accounts     *fakeAccountStore
	categories   *fakeCategoryStore
	users        *fakeUserStore
}

func newTestStores() *testStores {
	tx := &fakeTx{}
	transactions := newFakeTransactionStore()
	accounts := newFakeAccountStore()
	categories := newFakeCategoryStore()
	users := newFakeUserStore()
	return &testStores{
		writer:       storage.NewWriterWithStores(tx, transactions, accounts, categories, users),
		tx:           tx,
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		users:        users,
	}
}
