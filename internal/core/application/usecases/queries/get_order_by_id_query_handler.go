package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its lines.
// Returns an ObjectNotFoundError when no order has the given identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var orderResp OrderResponse
	var id uuid.UUID
	var placedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_email,
			delivery_address,
			total_amount,
			status,
			placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderResp.CustomerName,
		&orderResp.CustomerPhone,
		&orderResp.CustomerEmail,
		&orderResp.DeliveryAddress,
		&orderResp.TotalAmount,
		&orderResp.Status,
		&placedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, classifyStoreError(err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID
	orderResp.PlacedAt = placedAt.UTC()
	orderResp.Lines = make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, classifyStoreError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var menuItemID uuid.UUID
		var line OrderLineResponse

		err = rows.Scan(
			&menuItemID,
			&line.Name,
			&line.UnitPrice,
			&line.Quantity,
		)
		if err != nil {
			return OrderResponse{}, classifyStoreError(err)
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		line.MenuItemID = itemID
		orderResp.Lines = append(orderResp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, classifyStoreError(err)
	}

	return orderResp, nil
}
