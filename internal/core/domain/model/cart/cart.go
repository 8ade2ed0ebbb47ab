package cart

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// Selection is one line of the cart: a menu item with the display name and
// unit price captured when the customer picked it, plus the quantity.
type Selection struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  int
	quantity   int
}

// MenuItemID returns the identifier of the selected menu item.
func (s Selection) MenuItemID() kernel.UUID {
	return s.menuItemID
}

// Name returns the menu item display name captured at selection time.
func (s Selection) Name() string {
	return s.name
}

// UnitPrice returns the per-unit price captured at selection time.
func (s Selection) UnitPrice() int {
	return s.unitPrice
}

// Quantity returns how many units of the item are in the cart.
func (s Selection) Quantity() int {
	return s.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (s Selection) Subtotal() int {
	return s.unitPrice * s.quantity
}

// Cart accumulates menu selections into a priced draft order for one
// customer's browsing session. It is owned by a single session and never
// shared, so it needs no synchronization.
//
// The cart trusts the identifier, name, and price it is given at Add time;
// price integrity for the eventual order is re-derived from the lines passed
// to order creation, not re-fetched from the menu. A menu price change after
// an item is added must not silently alter the drafted order.
type Cart struct {
	selections []Selection
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the menu item into the cart. If a selection with the
// same menu item identifier already exists, its quantity is incremented by
// one; otherwise a new selection with quantity one is appended.
//
// The item's identity, name, and price are validated the same way order
// lines are, so an invalid selection can never reach submission.
func (c *Cart) Add(menuItemID kernel.UUID, name string, unitPrice int) error {
	// NewLine carries the validation rules; the line itself is discarded.
	if _, err := order.NewLine(menuItemID, name, unitPrice, 1); err != nil {
		return err
	}

	for i, s := range c.selections {
		if s.menuItemID.IsEqual(menuItemID) {
			c.selections[i].quantity++
			return nil
		}
	}

	c.selections = append(c.selections, Selection{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   1,
	})
	return nil
}

// SetQuantity sets the matching selection's quantity to exactly qty.
// A qty of zero or less removes the selection. Unknown identifiers are a
// no-op.
func (c *Cart) SetQuantity(menuItemID kernel.UUID, qty int) {
	if qty <= 0 {
		c.Remove(menuItemID)
		return
	}

	for i, s := range c.selections {
		if s.menuItemID.IsEqual(menuItemID) {
			c.selections[i].quantity = qty
			return
		}
	}
}

// Remove deletes the matching selection if present; no-op otherwise.
func (c *Cart) Remove(menuItemID kernel.UUID) {
	for i, s := range c.selections {
		if s.menuItemID.IsEqual(menuItemID) {
			c.selections = append(c.selections[:i], c.selections[i+1:]...)
			return
		}
	}
}

// Clear empties all selections.
func (c *Cart) Clear() {
	c.selections = nil
}

// Total returns the sum of unit price times quantity across all current
// selections. Pure, no side effects.
func (c *Cart) Total() int {
	total := 0
	for _, s := range c.selections {
		total += s.Subtotal()
	}
	return total
}

// CanSubmit reports whether the cart total reaches the minimum order amount.
// This is advisory prevalidation for the UI; order creation re-validates the
// minimum and must never trust this check alone.
func (c *Cart) CanSubmit(minimum int) bool {
	return c.Total() >= minimum
}

// Shortfall returns how much is missing to reach the minimum, zero when the
// cart is submittable. Used to display "add N more".
func (c *Cart) Shortfall(minimum int) int {
	if shortfall := minimum - c.Total(); shortfall > 0 {
		return shortfall
	}
	return 0
}

// IsEmpty reports whether the cart holds no selections.
func (c *Cart) IsEmpty() bool {
	return len(c.selections) == 0
}

// Selections returns a copy of the current selections in insertion order.
func (c *Cart) Selections() []Selection {
	selections := make([]Selection, len(c.selections))
	copy(selections, c.selections)
	return selections
}

// Lines converts the current selections into order lines for submission.
// The returned lines are snapshots; clearing the cart afterwards does not
// affect them.
func (c *Cart) Lines() ([]order.Line, error) {
	lines := make([]order.Line, 0, len(c.selections))
	for _, s := range c.selections {
		line, err := order.NewLine(s.menuItemID, s.name, s.unitPrice, s.quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
