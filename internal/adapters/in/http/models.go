package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLine is one menu selection inside an order payload.
type OrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int    `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest is the checkout payload. The id is generated by the
// client and doubles as a deduplication token for retried submissions;
// when omitted the server generates one.
type PlaceOrderRequest struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Lines           []OrderLine `json:"lines"`
	TotalAmount     int         `json:"totalAmount"`
}

// PlaceOrderResponse confirms the created order's identifier.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// Order is the full order payload shown on the dashboard.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Lines           []OrderLine `json:"lines"`
	TotalAmount     int         `json:"totalAmount"`
	Status          string      `json:"status"`
	PlacedAt        time.Time   `json:"placedAt"`
}

// ChangeOrderStatusRequest carries the target lifecycle status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderStats is the dashboard statistics payload.
type OrderStats struct {
	TotalOrders int `json:"totalOrders"`
	Pending     int `json:"pending"`
	Processing  int `json:"processing"`
	Completed   int `json:"completed"`
	Cancelled   int `json:"cancelled"`
	Revenue     int `json:"revenue"`
}

// Notification is one entry of the staff notification feed.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   string    `json:"orderId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// NotificationFeed is the feed payload with its unread counter.
type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

// ReadNotificationResponse points the client at the order the
// acknowledged notification referred to.
type ReadNotificationResponse struct {
	OrderID string `json:"orderId,omitempty"`
}
