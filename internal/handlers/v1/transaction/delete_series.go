package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
)

// DeleteSeriesInput is the Huma input for deleting an installment series.
type DeleteSeriesInput struct {
	ID string `path:"id" doc:"UUID of any transaction in the series"`
}

// DeleteSeriesResponseBody reports how many rows the delete removed.
type DeleteSeriesResponseBody struct {
	Deleted int64 `json:"deleted" doc:"Number of transactions removed"`
}

// DeleteSeriesOutput is the Huma output for deleting an installment series.
type DeleteSeriesOutput struct {
	Body DeleteSeriesResponseBody
}

// seriesDeleter is the interface for deleting installment series.
type seriesDeleter interface {
	DeleteSeries(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// DeleteSeriesHandler handles DELETE /v1/transaction/{id}/series.
type DeleteSeriesHandler struct {
	TransactionService seriesDeleter
}

// NewDeleteSeriesHandler creates a new DeleteSeriesHandler.
func NewDeleteSeriesHandler(svc seriesDeleter) *DeleteSeriesHandler {
	return &DeleteSeriesHandler{TransactionService: svc}
}

// Register registers the delete series endpoint with the Huma API.
func (h *DeleteSeriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction-series",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}/series",
		Summary:     "Delete transaction series",
		Description: "Deletes the whole installment series the transaction belongs to. A transaction outside any series is deleted alone.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteSeriesHandler) handle(ctx context.Context, input *DeleteSeriesInput) (*DeleteSeriesOutput, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	deleted, err := h.TransactionService.DeleteSeries(ctx, userID, id)
	if err != nil {
		if errors.Is(err, actions.ErrTransactionNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction series", err)
	}

	return &DeleteSeriesOutput{Body: DeleteSeriesResponseBody{Deleted: deleted}}, nil
}
