package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harborview-labs/finance-server/internal/storage"
	"github.com/harborview-labs/finance-server/internal/storage/account"
)

// CreateAccount creates an account for the user. Credit card accounts must
// state their billing days.
type CreateAccount struct {
	UserID         uuid.UUID
	Name           string
	Type           account.Type
	InitialBalance decimal.Decimal
	ClosingDay     *int16
	DueDay         *int16

	// Created holds the inserted row after Perform.
	Created *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Type == account.TypeCreditCard && (a.ClosingDay == nil || a.DueDay == nil) {
		return ErrCreditCardBillingDays
	}

	row, err := writer.Account.Insert(ctx, &account.AccountCreate{
		UserID:         a.UserID,
		Name:           a.Name,
		Type:           a.Type,
		InitialBalance: a.InitialBalance,
		ClosingDay:     a.ClosingDay,
		DueDay:         a.DueDay,
	})
	if err != nil {
		return err
	}

	a.Created = row
	return nil
}
