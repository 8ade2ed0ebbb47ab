package order

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Line is one menu selection within an order: the menu item identity, its
// display name and unit price captured at selection time, and the quantity.
//
// Line is a snapshot value object. The name and unit price are copied from
// the menu when the customer selects the item; later menu edits must never
// retroactively alter a placed order, so the line never re-reads the menu.
type Line struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  int
	quantity   int

	isConstructed bool
}

// NewLine creates a validated order line.
//
// Validations:
//   - menuItemID must be a constructed UUID
//   - name must be non-empty
//   - unitPrice must be non-negative
//   - quantity must be positive
func NewLine(menuItemID kernel.UUID, name string, unitPrice, quantity int) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", unitPrice))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		menuItemID:    menuItemID,
		name:          name,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return errs.NewValueIsRequiredError("line must be created via NewLine")
	}
	return nil
}

// MenuItemID returns the identifier of the selected menu item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the menu item display name captured at selection time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price captured at selection time.
func (l Line) UnitPrice() int {
	return l.unitPrice
}

// Quantity returns how many units of the item were selected.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (l Line) Subtotal() int {
	return l.unitPrice * l.quantity
}
