package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer's request to place an order:
// the customer's contact details, the menu selections snapshotted from the
// cart, and the total the customer saw at submission time.
//
// The order identifier is supplied by the caller. It doubles as a
// deduplication token: a client retrying a submission re-sends the same
// identifier, and the store rejects the duplicate instead of creating a
// second order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	lines, _ := sessionCart.Lines()
//	cmd, err := commands.NewPlaceOrderCommand(
//	    orderID, "Rahim", "01712345678", "", "House 12, Dhanmondi",
//	    lines, sessionCart.Total(),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	customerEmail   string
	deliveryAddress string
	lines           []order.Line
	totalAmount     int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the required customer fields are
// non-empty, and at least one line is present. The total-matches-lines and
// minimum-amount checks belong to the handler and the domain, so a tampered
// total is rejected at handling time, not silently accepted here.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	lines []order.Line,
	totalAmount int,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerEmail: customerEmail,
		totalAmount:   totalAmount,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the client-generated identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the customer's optional email.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// DeliveryAddress returns the delivery destination.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Lines returns the menu selections to order.
func (c PlaceOrderCommand) Lines() []order.Line {
	return c.lines
}

// TotalAmount returns the total the customer submitted.
func (c PlaceOrderCommand) TotalAmount() int {
	return c.totalAmount
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	c.lines = lines
	return nil
}
