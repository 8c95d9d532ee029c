package operator

import (
	"context"

	"github.com/harborview-labs/finance-server/internal/operator/actions"
	"github.com/harborview-labs/finance-server/internal/storage"
)

// writeBeginner opens a database transaction for an action to run in.
// *storage.Storage satisfies it; tests substitute their own.
type writeBeginner interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue. Each action
// runs inside a single database transaction: committed when Perform succeeds,
// rolled back when it fails. This is what makes bulk installment creation and
// series deletion indivisible to concurrent readers.
type Operator struct {
	storage writeBeginner
	queue   chan ActionItem
}

func NewOperator(s writeBeginner, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
