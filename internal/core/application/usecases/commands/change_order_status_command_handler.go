package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles status transitions on existing
// orders.
//
// The handler loads the order, lets the aggregate validate the transition
// against the legal table, and persists the change with a compare-and-swap
// on the order's version. Two concurrent transitions from the same source
// state can therefore never both succeed: the loser either re-reads the
// winner's state and fails the transition check, or loses the
// compare-and-swap and gets a conflict.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated
// aggregate so callers can notify without a second read.
//
// Fails with ObjectNotFoundError when the order does not exist, with
// IllegalTransitionError when the (current, target) pair is not in the
// legal table, and with ConcurrencyConflictError when a concurrent writer
// advanced the order between load and update. No kind is ever swallowed.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.TargetStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
