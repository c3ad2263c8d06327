package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
	// order хранит идентификаторы в порядке вставки, чтобы Find был детерминированным.
	order []string
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Find возвращает товары в порядке вставки, применяя фильтр.
func (r *productRepositoryInMemory) Find(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.order))
	needle := strings.ToLower(filter.TitleSubstring)
	for _, id := range r.order {
		product := r.items[id]
		if needle != "" && !strings.Contains(strings.ToLower(product.Title), needle) {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		result = append(result, copyProduct(product))
	}

	return result, nil
}

// Get возвращает товар или ErrProductNotFound, если его нет.
// NOTE: in-memory идентификаторы — UUID, поэтому проверка «некорректного»
// ObjectID здесь не воспроизводится; любой неизвестный id считается не найденным.
func (r *productRepositoryInMemory) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return copyProduct(product), nil
}

// Insert сохраняет товар и возвращает назначенный идентификатор.
func (r *productRepositoryInMemory) Insert(_ context.Context, product domain.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	product.ID = id
	// Сохраняем глубокую копию: слайсы вызывающего не должны делить
	// backing array с данными репозитория.
	r.items[id] = copyProduct(product)
	r.order = append(r.order, id)
	return id, nil
}

func copyProduct(product domain.Product) domain.Product {
	if product.Tags != nil {
		tags := make([]string, len(product.Tags))
		copy(tags, product.Tags)
		product.Tags = tags
	}
	if product.Images != nil {
		images := make([]domain.ProductImage, len(product.Images))
		copy(images, product.Images)
		product.Images = images
	}
	return product
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
