package kafka

import "time"

// EventType определяет тип события.
type EventType string

const (
	// EventTypeOrderPlaced — заказ оформлен и расчёт цены завершён.
	EventTypeOrderPlaced EventType = "order.placed"
	// EventTypeOrderPersistFailed — заказ рассчитан, но сохранить его не удалось.
	EventTypeOrderPersistFailed EventType = "order.persist_failed"
)

// Topics для Kafka.
const (
	TopicOrderEvents = "giftnama.order.events"
)

// OrderEvent представляет событие заказа.
type OrderEvent struct {
	EventType EventType `json:"event_type"`
	// OrderID — идентификатор сохранённого заказа; пустой, если заказ не сохранён.
	OrderID       string    `json:"order_id,omitempty"`
	CustomerEmail string    `json:"customer_email"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"item_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа.
func NewOrderEvent(eventType EventType, orderID, customerEmail, status string, total float64, itemCount int) *OrderEvent {
	return &OrderEvent{
		EventType:     eventType,
		OrderID:       orderID,
		CustomerEmail: customerEmail,
		Status:        status,
		Total:         total,
		ItemCount:     itemCount,
		Timestamp:     time.Now(),
	}
}
