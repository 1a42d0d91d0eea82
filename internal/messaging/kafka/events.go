package kafka

import "time"

// EventType определяет тип события заказа.
type EventType string

const (
	// EventTypeOrderCancelled публикуется после успешной отмены заказа.
	EventTypeOrderCancelled EventType = "order.canceled"
)

// TopicOrderEvents — топик событий жизненного цикла заказов.
const TopicOrderEvents = "storefront.order.events"

// OrderEvent представляет событие заказа.
type OrderEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderCancelledEvent создает событие отмены заказа.
func NewOrderCancelledEvent(orderID, userID, reason string) *OrderEvent {
	return &OrderEvent{
		EventType: EventTypeOrderCancelled,
		OrderID:   orderID,
		UserID:    userID,
		Status:    "cancelled",
		Reason:    reason,
		Timestamp: time.Now(),
	}
}
