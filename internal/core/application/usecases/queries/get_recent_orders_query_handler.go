package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecentOrdersQueryHandler retrieves the most recent orders from the
// database, newest first, with their lines attached.
//
// Example:
//
//	handler := NewGetRecentOrdersQueryHandler(db)
//	query, _ := NewGetRecentOrdersQuery(50)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get recent orders: %v", err)
//	    return err
//	}
type GetRecentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentOrdersQueryHandler creates a handler for recent order queries.
// Requires a GORM database connection for query execution.
func NewGetRecentOrdersQueryHandler(db *gorm.DB) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the most recent orders.
// Results are sorted by placement time descending and capped at the
// query's limit. Lines preserve the sequence they were ordered in.
func (h GetRecentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRecentOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY placed_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderResponse
		var id uuid.UUID
		var placedAt time.Time

		err = rows.Scan(
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
			return nil, classifyStoreError(err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.PlacedAt = placedAt.UTC()
		orderResp.Lines = make([]OrderLineResponse, 0)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}

	if err = h.attachLines(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines loads the order lines for the given orders with a single
// query and distributes them to their owners in position order.
func (h GetRecentOrdersQueryHandler) attachLines(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	byID := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		byID[o.ID.Bytes()] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price,
			quantity
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return classifyStoreError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, menuItemID uuid.UUID
		var line OrderLineResponse

		err = rows.Scan(
			&orderID,
			&menuItemID,
			&line.Name,
			&line.UnitPrice,
			&line.Quantity,
		)
		if err != nil {
			return classifyStoreError(err)
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}
		line.MenuItemID = itemID

		idx, ok := byID[orderID]
		if !ok {
			continue
		}
		orders[idx].Lines = append(orders[idx].Lines, line)
	}

	if err = rows.Err(); err != nil {
		return classifyStoreError(err)
	}

	return nil
}
