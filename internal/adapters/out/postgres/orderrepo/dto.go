// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and placement time for the dashboard's filtered and
// most-recent-first reads. Version backs the per-record optimistic
// concurrency check used by status updates.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	TotalAmount     int
	Status          string    `gorm:"index"`
	PlacedAt        time.Time `gorm:"index"`
	Version         int
	Lines           []LineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one persisted menu selection of an order.
// Position preserves the selection order within the order.
type LineDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	UnitPrice  int
	Quantity   int
	Position   int
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]LineDTO, 0, len(domainLines))
	for i, line := range domainLines {
		lines = append(lines, LineDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice(),
			Quantity:   line.Quantity(),
			Position:   i,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		CustomerEmail:   aggregate.CustomerEmail(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		TotalAmount:     aggregate.TotalAmount(),
		Status:          aggregate.Status().String(),
		PlacedAt:        aggregate.PlacedAt(),
		Version:         aggregate.Version(),
		Lines:           lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and version using
// RestoreOrder, so corrupt rows fail loudly instead of producing invalid
// aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		menuItemID, itemErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := order.NewLine(menuItemID, lineDTO.Name, lineDTO.UnitPrice, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerEmail,
		dto.DeliveryAddress,
		lines,
		dto.TotalAmount,
		status,
		dto.PlacedAt,
		dto.Version,
	)
}
