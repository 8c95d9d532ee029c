package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/auth"
	"github.com/harborview-labs/finance-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account UUID"`
	Name           string `json:"name" doc:"Account name"`
	Type           string `json:"type" doc:"CASH, CHECKING, SAVINGS, INVESTMENT or CREDIT_CARD"`
	InitialBalance string `json:"initialBalance" doc:"Balance the account opened with"`
	CurrentBalance string `json:"currentBalance" doc:"Initial balance plus settled income minus settled expenses"`
	ClosingDay     *int16 `json:"closingDay,omitempty" doc:"Credit card statement closing day"`
	DueDay         *int16 `json:"dueDay,omitempty" doc:"Credit card payment due day"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(acc service.Account) Account {
	return Account{
		ID:             acc.ID.String(),
		Name:           acc.Name,
		Type:           string(acc.Type),
		InitialBalance: acc.InitialBalance.StringFixed(2),
		CurrentBalance: acc.CurrentBalance.StringFixed(2),
		ClosingDay:     acc.ClosingDay,
		DueDay:         acc.DueDay,
		CreatedAt:      acc.CreatedAt.Format(time.RFC3339),
	}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}
