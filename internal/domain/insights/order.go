package insights

import "time"

// OrderID tipe untuk Order
type OrderID string

// OrderStatus enum
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderRefunded  OrderStatus = "refunded"
)

// Order is a purchase record. Immutable once completed.
type Order struct {
	ID        OrderID     `json:"id"`
	UserID    string      `json:"user_id"`
	ProductID string      `json:"product_id"`
	Amount    float64     `json:"amount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
