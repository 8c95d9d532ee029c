package actions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/harborview-labs/finance-server/internal/storage/transaction"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func boolPtr(b bool) *bool {
	return &b
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newCreateAction(stores *testStores, userID uuid.UUID) *CreateTransaction {
	accountID := stores.accounts.add(userID)
	return &CreateTransaction{
		UserID:      userID,
		AccountID:   accountID,
		Type:        transaction.TypeExpense,
		Description: "Laptop",
		Date:        date("2024-01-15"),
		DefaultPaid: true,
	}
}

// -- single (non-split) path --

func TestCreateTransaction_Single(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("100.00")

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	assert.Len(t, action.Created, 1)
	created := action.Created[0]
	assert.True(t, created.Value.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "Laptop", created.Description)
	assert.True(t, created.Paid, "paid defaults to true")
	assert.Nil(t, created.InstallmentGroupID)
	assert.Nil(t, created.InstallmentCurrent)
	assert.Nil(t, created.InstallmentTotal)
	assert.Equal(t, 1, stores.transactions.insertCalls)
	assert.Empty(t, stores.transactions.bulkBatches)
}

func TestCreateTransaction_SingleWithCountOfOne(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("50.00")
	action.InstallmentTotal = 1

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	assert.Len(t, action.Created, 1)
	assert.Nil(t, action.Created[0].InstallmentGroupID)
}

func TestCreateTransaction_SinglePaidOverride(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("10.00")
	action.Paid = boolPtr(false)

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)
	assert.False(t, action.Created[0].Paid)
}

func TestCreateTransaction_SingleConfiguredDefaultUnpaid(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("10.00")
	action.DefaultPaid = false

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)
	assert.False(t, action.Created[0].Paid)
}

// -- split path --

func TestCreateTransaction_SplitWorkedExample(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("100.00")
	action.InstallmentTotal = 3

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	assert.Len(t, action.Created, 3)

	wantValues := []string{"33.34", "33.33", "33.33"}
	wantDates := []string{"2024-01-15", "2024-02-15", "2024-03-15"}
	for i, row := range action.Created {
		assert.True(t, row.Value.Equal(decimal.RequireFromString(wantValues[i])),
			"installment %d value = %s, want %s", i+1, row.Value, wantValues[i])
		assert.Equal(t, wantDates[i], row.Date.Format("2006-01-02"))
		assert.Equal(t, fmt.Sprintf("Laptop (%d/3)", i+1), row.Description)
		assert.False(t, row.Paid, "installments are future obligations")
		assert.NotNil(t, row.InstallmentGroupID)
		assert.Equal(t, i+1, *row.InstallmentCurrent)
		assert.Equal(t, 3, *row.InstallmentTotal)
	}
}

func TestCreateTransaction_SplitSumsToTotal(t *testing.T) {
	totals := []string{"100.00", "0.05", "1999.99", "333.33", "12.34"}
	counts := []int{2, 3, 5, 7, 12}

	for _, total := range totals {
		for _, count := range counts {
			t.Run(fmt.Sprintf("%s/%d", total, count), func(t *testing.T) {
				stores := newTestStores()
				userID := uuid.Must(uuid.NewV4())

				action := newCreateAction(stores, userID)
				action.Value = decimalPtr(total)
				action.InstallmentTotal = count

				err := action.Perform(context.Background(), stores.writer)
				assert.NoError(t, err)
				assert.Len(t, action.Created, count)

				sum := decimal.Zero
				for _, row := range action.Created {
					sum = sum.Add(row.Value)
				}
				assert.True(t, sum.Equal(decimal.RequireFromString(total)),
					"sum = %s, want %s", sum, total)
			})
		}
	}
}

func TestCreateTransaction_SplitRemainderOnFirstOnly(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("100.00")
	action.InstallmentTotal = 7

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	base, remainder := splitValue(decimal.RequireFromString("100.00"), 7)
	assert.True(t, action.Created[0].Value.Equal(base.Add(remainder)))
	for _, row := range action.Created[1:] {
		assert.True(t, row.Value.Equal(base), "installment %d = %s, want base %s",
			*row.InstallmentCurrent, row.Value, base)
	}
}

func TestCreateTransaction_SplitGroupContiguity(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("240.00")
	action.InstallmentTotal = 6

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	groupID := action.Created[0].InstallmentGroupID
	assert.NotNil(t, groupID)

	seen := make(map[int]bool)
	for _, row := range action.Created {
		assert.Equal(t, *groupID, *row.InstallmentGroupID, "all members share the group id")
		assert.False(t, seen[*row.InstallmentCurrent], "no duplicate positions")
		seen[*row.InstallmentCurrent] = true
	}
	for i := 1; i <= 6; i++ {
		assert.True(t, seen[i], "position %d missing", i)
	}
}

func TestCreateTransaction_SplitFixedInstallmentValue(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	// Total is present but the fixed per-installment value wins.
	action.Value = decimalPtr("999.99")
	action.InstallmentValue = decimalPtr("55.75")
	action.InstallmentTotal = 4

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	assert.Len(t, action.Created, 4)
	for _, row := range action.Created {
		assert.True(t, row.Value.Equal(decimal.RequireFromString("55.75")),
			"every installment carries the fixed value, got %s", row.Value)
	}
}

func TestCreateTransaction_SplitDateCadenceClampsMonthEnd(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("300.00")
	action.InstallmentTotal = 3
	action.Date = date("2024-01-31")

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	wantDates := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	for i, row := range action.Created {
		assert.Equal(t, wantDates[i], row.Date.Format("2006-01-02"))
	}
}

func TestCreateTransaction_SplitUsesOneBulkInsert(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("100.00")
	action.InstallmentTotal = 5

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	assert.Equal(t, 0, stores.transactions.insertCalls, "split path never inserts row by row")
	assert.Len(t, stores.transactions.bulkBatches, 1, "exactly one bulk insert")
	assert.Len(t, stores.transactions.bulkBatches[0], 5)
}

func TestCreateTransaction_SplitCopiesCategoryAndNotes(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	categoryID := stores.categories.add(userID)
	action.CategoryID = &categoryID
	action.Notes = "work machine"
	action.Value = decimalPtr("100.00")
	action.InstallmentTotal = 2

	err := action.Perform(context.Background(), stores.writer)
	assert.NoError(t, err)

	for _, row := range action.Created {
		assert.Equal(t, categoryID, *row.CategoryID)
		assert.Equal(t, "work machine", row.Notes)
		assert.Equal(t, transaction.TypeExpense, row.Type)
	}
}

// -- reference checks --

func TestCreateTransaction_UnknownAccount(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := &CreateTransaction{
		UserID:      userID,
		AccountID:   uuid.Must(uuid.NewV4()),
		Type:        transaction.TypeExpense,
		Description: "Laptop",
		Date:        date("2024-01-15"),
		Value:       decimalPtr("100.00"),
		DefaultPaid: true,
	}

	err := action.Perform(context.Background(), stores.writer)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Empty(t, action.Created)
	assert.Equal(t, 0, stores.transactions.insertCalls)
}

func TestCreateTransaction_ForeignAccountRejected(t *testing.T) {
	stores := newTestStores()
	otherUser := uuid.Must(uuid.NewV4())
	foreignAccount := stores.accounts.add(otherUser)

	action := &CreateTransaction{
		UserID:      uuid.Must(uuid.NewV4()),
		AccountID:   foreignAccount,
		Type:        transaction.TypeExpense,
		Description: "Laptop",
		Date:        date("2024-01-15"),
		Value:       decimalPtr("100.00"),
		DefaultPaid: true,
	}

	err := action.Perform(context.Background(), stores.writer)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	unknown := uuid.Must(uuid.NewV4())
	action.CategoryID = &unknown
	action.Value = decimalPtr("100.00")

	err := action.Perform(context.Background(), stores.writer)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Empty(t, action.Created)
}

func TestCreateTransaction_StorageErrorPropagates(t *testing.T) {
	stores := newTestStores()
	userID := uuid.Must(uuid.NewV4())

	action := newCreateAction(stores, userID)
	action.Value = decimalPtr("100.00")
	action.InstallmentTotal = 3
	stores.transactions.bulkInsertErr = assert.AnError

	err := action.Perform(context.Background(), stores.writer)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, action.Created)
}
