package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/auth"
	"github.com/harborview-labs/finance-server/internal/service"
)

// dateFormat is the wire format for transaction dates. Transactions carry
// calendar dates, not instants.
const dateFormat = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                 string  `json:"id" doc:"Transaction UUID"`
	AccountID          string  `json:"accountID" doc:"Account UUID"`
	CategoryID         *string `json:"categoryID,omitempty" doc:"Category UUID, absent when uncategorized"`
	Description        string  `json:"description" doc:"Description of the transaction"`
	Value              string  `json:"value" doc:"Decimal value"`
	Date               string  `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	Paid               bool    `json:"paid" doc:"Whether the transaction has settled"`
	Type               string  `json:"type" doc:"INCOME, EXPENSE or TRANSFER"`
	InstallmentGroupID *string `json:"installmentGroupID,omitempty" doc:"Series UUID, present on installments"`
	InstallmentCurrent *int    `json:"installmentCurrent,omitempty" doc:"1-based position within the series"`
	InstallmentTotal   *int    `json:"installmentTotal,omitempty" doc:"Number of installments in the series"`
	Notes              string  `json:"notes,omitempty" doc:"Free-form notes"`
	CreatedAt          string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	converted := Transaction{
		ID:                 tx.ID.String(),
		AccountID:          tx.AccountID.String(),
		Description:        tx.Description,
		Value:              tx.Value.StringFixed(2),
		Date:               tx.Date.Format(dateFormat),
		Paid:               tx.Paid,
		Type:               string(tx.Type),
		InstallmentCurrent: tx.InstallmentCurrent,
		InstallmentTotal:   tx.InstallmentTotal,
		Notes:              tx.Notes,
		CreatedAt:          tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		categoryID := tx.CategoryID.String()
		converted.CategoryID = &categoryID
	}
	if tx.InstallmentGroupID != nil {
		groupID := tx.InstallmentGroupID.String()
		converted.InstallmentGroupID = &groupID
	}
	return converted
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}
