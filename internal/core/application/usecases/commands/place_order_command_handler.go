package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// This is the only path through which new orders enter the store.
//
// The handler re-validates the minimum order amount on the server side;
// the cart's CanSubmit check is advisory prevalidation and is never trusted
// as the sole gate. The total-equals-lines invariant is enforced by the
// order aggregate itself.
type PlaceOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	minimumAmount int
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// minimumAmount is the configured minimum order threshold (300 currency
// units in the reference deployment).
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, minimumAmount int) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		minimumAmount: minimumAmount,
	}
}

// Handle processes the order placement command.
//
// The aggregate is constructed first, so a total that does not equal the
// recomputed sum of lines always fails with a validation error before any
// other check; the minimum is then applied to the verified total and fails
// with BelowMinimumError carrying the shortfall. Persists the order in
// pending status otherwise. The transaction guarantees a fully-formed order
// appears or none does.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.DeliveryAddress(),
		cmd.Lines(),
		cmd.TotalAmount(),
	)
	if err != nil {
		return err
	}

	if newOrder.TotalAmount() < h.minimumAmount {
		return errs.NewBelowMinimumError(newOrder.TotalAmount(), h.minimumAmount)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
