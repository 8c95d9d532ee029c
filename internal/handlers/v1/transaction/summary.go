package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/service"
)

// SummaryInput is the Huma input for the period summary.
type SummaryInput struct {
	StartDate string `query:"startDate" doc:"Inclusive lower bound on the transaction date (YYYY-MM-DD)"`
	EndDate   string `query:"endDate" doc:"Inclusive upper bound on the transaction date (YYYY-MM-DD)"`
}

// SummaryResponseBody holds a period's totals.
type SummaryResponseBody struct {
	TotalIncome  string `json:"totalIncome" doc:"Sum of paid income in the period"`
	TotalExpense string `json:"totalExpense" doc:"Sum of paid expenses and transfers in the period"`
	Balance      string `json:"balance" doc:"totalIncome minus totalExpense"`
}

// SummaryOutput is the Huma output for the period summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for period summaries.
type summarizer interface {
	Summarize(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*service.Summary, error)
}

// SummaryHandler handles GET /v1/transaction/summary.
type SummaryHandler struct {
	TransactionService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-summary",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/summary",
		Summary:     "Transaction summary",
		Description: "Returns income and expense totals over a period. Omitted bounds leave that side open.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var startDate, endDate *time.Time
	if input.StartDate != "" {
		parsed, err := time.Parse(dateFormat, input.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		startDate = &parsed
	}
	if input.EndDate != "" {
		parsed, err := time.Parse(dateFormat, input.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		endDate = &parsed
	}

	summary, err := h.TransactionService.Summarize(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		TotalIncome:  summary.TotalIncome.StringFixed(2),
		TotalExpense: summary.TotalExpense.StringFixed(2),
		Balance:      summary.Balance.StringFixed(2),
	}}, nil
}
