package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
)

// CreateTransaction creates either a single transaction or, when
// InstallmentTotal is greater than 1, a full installment series in one bulk
// insert. The handler layer validates that at least one of Value and
// InstallmentValue is present and that InstallmentValue implies an
// InstallmentTotal; Perform assumes well-formed input.
type CreateTransaction struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Type        transaction.Type
	Description string
	Notes       string
	Date        time.Time

	// Value is the total to split (or the single transaction's value).
	// InstallmentValue, when set, fixes every installment's value and takes
	// precedence over Value.
	Value            *decimal.Decimal
	InstallmentValue *decimal.Decimal
	InstallmentTotal int

	// Paid applies to the single path only; installments are always created
	// unpaid. DefaultPaid is the configured fallback when Paid is nil.
	Paid        *bool
	DefaultPaid bool

	// Created holds the inserted rows in installment order after Perform.
	Created []*transaction.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.FindByID(ctx, a.UserID, a.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if a.CategoryID != nil {
		category, err := writer.Category.FindByID(ctx, a.UserID, *a.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}

	if a.InstallmentTotal > 1 {
		return a.performSplit(ctx, writer)
	}
	return a.performSingle(ctx, writer)
}

func (a *CreateTransaction) performSingle(ctx context.Context, writer *storage.Writer) error {
	paid := a.DefaultPaid
	if a.Paid != nil {
		paid = *a.Paid
	}

	row, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		AccountID:   a.AccountID,
		CategoryID:  a.CategoryID,
		Description: a.Description,
		Value:       *a.Value,
		Date:        a.Date,
		Paid:        paid,
		Type:        a.Type,
		Notes:       a.Notes,
	})
	if err != nil {
		return err
	}

	a.Created = []*transaction.Transaction{row}
	return nil
}

func (a *CreateTransaction) performSplit(ctx context.Context, writer *storage.Writer) error {
	groupID, err := uuid.NewV4()
	if err != nil {
		return err
	}

	total := a.InstallmentTotal

	var base, remainder decimal.Decimal
	if a.InstallmentValue != nil {
		base = *a.InstallmentValue
	} else {
		base, remainder = splitValue(*a.Value, total)
	}

	creates := make([]*transaction.TransactionCreate, 0, total)
	for i := 1; i <= total; i++ {
		value := base
		if i == 1 {
			value = base.Add(remainder)
		}

		current := i
		count := total
		creates = append(creates, &transaction.TransactionCreate{
			UserID:             a.UserID,
			AccountID:          a.AccountID,
			CategoryID:         a.CategoryID,
			Description:        fmt.Sprintf("%s (%d/%d)", a.Description, i, total),
			Value:              value,
			Date:               addMonths(a.Date, i-1),
			Paid:               false,
			Type:               a.Type,
			InstallmentGroupID: &groupID,
			InstallmentCurrent: &current,
			InstallmentTotal:   &count,
			Notes:              a.Notes,
		})
	}

	rows, err := writer.Transaction.BulkInsert(ctx, creates)
	if err != nil {
		return err
	}

	a.Created = rows
	return nil
}
