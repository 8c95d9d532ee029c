package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type classifies an account.
type Type string

const (
	TypeCash       Type = "CASH"
	TypeChecking   Type = "CHECKING"
	TypeSavings    Type = "SAVINGS"
	TypeInvestment Type = "INVESTMENT"
	TypeCreditCard Type = "CREDIT_CARD"
)

// ValidType reports whether t is one of the known account types.
func ValidType(t Type) bool {
	switch t {
	case TypeCash, TypeChecking, TypeSavings, TypeInvestment, TypeCreditCard:
		return true
	}
	return false
}

// Account represents an account record. ClosingDay and DueDay are the credit
// card billing days and are nil for other account types.
type Account struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	Name           string          `db:"name"`
	Type           Type            `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	ClosingDay     *int16          `db:"closing_day"`
	DueDay         *int16          `db:"due_day"`
	CreatedAt      time.Time       `db:"created_at"`
}

// AccountWithBalance is an account annotated with its derived balance:
// initial balance plus paid income minus paid expenses and transfers.
type AccountWithBalance struct {
	Account
	CurrentBalance decimal.Decimal `db:"current_balance"`
}

// AccountCreate is the input for inserting an account row.
type AccountCreate struct {
	UserID         uuid.UUID
	Name           string
	Type           Type
	InitialBalance decimal.Decimal
	ClosingDay     *int16
	DueDay         *int16
}

// IAccountReader defines read-side account storage operations.
type IAccountReader interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Account, error)
	List(ctx context.Context, userID uuid.UUID) ([]*AccountWithBalance, error)
}

// IAccountWriter defines account storage operations that run inside a
// database transaction.
type IAccountWriter interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error)
}
