package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/logging"
	"github.com/harborview-labs/finance-server/internal/service"
	"github.com/harborview-labs/finance-server/internal/storage/transaction"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Upper bound on created_at locked in from the first page"`
}

// ListTransactionsFilter narrows the listing in request bodies.
type ListTransactionsFilter struct {
	AccountID  string `json:"accountID,omitempty" doc:"Only transactions on this account"`
	CategoryID string `json:"categoryID,omitempty" doc:"Only transactions in this category"`
	Type       string `json:"type,omitempty" doc:"Only transactions of this type"`
	Paid       *bool  `json:"paid,omitempty" doc:"Only settled (true) or pending (false) transactions"`
	StartDate  string `json:"startDate,omitempty" doc:"Inclusive lower bound on the transaction date (YYYY-MM-DD)"`
	EndDate    string `json:"endDate,omitempty" doc:"Inclusive upper bound on the transaction date (YYYY-MM-DD)"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Filter *ListTransactionsFilter `json:"filter,omitempty" doc:"Optional filters, applied on every page"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter service.TransactionListFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of transactions using cursor-based pagination, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsFilter parses and validates the optional filter block.
func parseListTransactionsFilter(body *ListTransactionsFilter) (service.TransactionListFilter, error) {
	var filter service.TransactionListFilter
	if body == nil {
		return filter, nil
	}

	if body.AccountID != "" {
		accountID, err := uuid.FromString(body.AccountID)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter accountID", err)
		}
		filter.AccountID = &accountID
	}

	if body.CategoryID != "" {
		categoryID, err := uuid.FromString(body.CategoryID)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter categoryID", err)
		}
		filter.CategoryID = &categoryID
	}

	if body.Type != "" {
		transactionType := transaction.Type(body.Type)
		if !transaction.ValidType(transactionType) {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter type")
		}
		filter.Type = &transactionType
	}

	filter.Paid = body.Paid

	if body.StartDate != "" {
		startDate, err := time.Parse(dateFormat, body.StartDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter startDate", err)
		}
		filter.StartDate = &startDate
	}

	if body.EndDate != "" {
		endDate, err := time.Parse(dateFormat, body.EndDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid filter endDate", err)
		}
		filter.EndDate = &endDate
	}

	return filter, nil
}

// parseListTransactionsCursor parses the optional cursor block.
// When a cursor is provided, limit and maxCreationTime come from it.
// Without a cursor, the service uses its default limit.
func parseListTransactionsCursor(body *ListTransactionsCursor) (*service.TransactionCursor, error) {
	if body == nil {
		return nil, nil
	}

	maxCreationTime, err := time.Parse(time.RFC3339, body.MaxCreationTime)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
	}

	return &service.TransactionCursor{
		Position:        body.Position,
		Limit:           body.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := parseListTransactionsFilter(input.Body.Filter)
	if err != nil {
		return nil, err
	}

	requestCursor, err := parseListTransactionsCursor(input.Body.Cursor)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, userID, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromService(tx)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
