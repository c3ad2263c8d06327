package domain

import "context"

// ProductFilter ограничивает выборку товаров каталога.
type ProductFilter struct {
	// TitleSubstring — подстрока названия, сравнение без учёта регистра.
	TitleSubstring string
	// Category — точное совпадение категории (с учётом регистра).
	Category string
}

// ProductRepository описывает доступ к коллекции товаров.
type ProductRepository interface {
	// Find возвращает товары, удовлетворяющие фильтру, в порядке хранилища.
	Find(ctx context.Context, filter ProductFilter) ([]Product, error)
	// Get возвращает товар по идентификатору.
	// ErrInvalidProductID — идентификатор синтаксически некорректен,
	// ErrProductNotFound — товара с таким идентификатором нет.
	Get(ctx context.Context, id string) (Product, error)
	// Insert сохраняет новый товар и возвращает назначенный идентификатор.
	Insert(ctx context.Context, product Product) (string, error)
}

// OrderRepository описывает доступ к коллекции заказов.
type OrderRepository interface {
	// Insert сохраняет новый заказ и возвращает назначенный идентификатор.
	Insert(ctx context.Context, order Order) (string, error)
	// Get возвращает заказ или ErrOrderNotFound.
	Get(ctx context.Context, id string) (Order, error)
}

// EventPublisher публикует доменные события наружу; публикация best-effort.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}
