package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/harborview-labs/finance-server/internal/storage/account"
)

// Account represents an account in the service layer. CurrentBalance is
// derived: initial balance plus paid income minus paid expenses and
// transfers. On rows coming from a create it equals the initial balance.
type Account struct {
	ID             uuid.UUID
	Name           string
	Type           account.Type
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	ClosingDay     *int16
	DueDay         *int16
	CreatedAt      time.Time
}

// CreateAccountInput carries everything needed to create an account.
// ClosingDay and DueDay are required for credit card accounts.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Name           string
	Type           account.Type
	InitialBalance decimal.Decimal
	ClosingDay     *int16
	DueDay         *int16
}

func accountFromStorage(row *account.Account, balance decimal.Decimal) Account {
	return Account{
		ID:             row.ID,
		Name:           row.Name,
		Type:           row.Type,
		InitialBalance: row.InitialBalance,
		CurrentBalance: balance,
		ClosingDay:     row.ClosingDay,
		DueDay:         row.DueDay,
		CreatedAt:      row.CreatedAt,
	}
}
