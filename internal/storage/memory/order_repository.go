package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Insert сохраняет заказ и возвращает назначенный идентификатор.
func (r *orderRepositoryInMemory) Insert(_ context.Context, order domain.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	order.ID = id
	r.items[id] = copyOrder(order)
	return id, nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return copyOrder(order), nil
}

// copyOrder разрывает общий backing array позиций с вызывающим.
func copyOrder(order domain.Order) domain.Order {
	if order.Items != nil {
		items := make([]domain.OrderItem, len(order.Items))
		copy(items, order.Items)
		order.Items = items
	}
	return order
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
