// Package catalog реализует выдачу и создание товаров каталога.
package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
	"github.com/vladislavdragonenkov/giftnama/internal/metrics"
)

// Service обслуживает листинг и создание товаров.
type Service struct {
	// products nil, когда хранилище не сконфигурировано; листинг тогда
	// деградирует до статического каталога, создание недоступно.
	products domain.ProductRepository
	metrics  *metrics.CheckoutMetrics
	logger   *log.Entry
}

// NewService конструирует сервис каталога. metrics может быть nil.
func NewService(products domain.ProductRepository, m *metrics.CheckoutMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog-service")
	}
	return &Service{
		products: products,
		metrics:  m,
		logger:   logger,
	}
}

// List возвращает товары по фильтру.
// Без сконфигурированного хранилища возвращается фиксированный
// однопозиционный demo-каталог (политика деградации, не кэш).
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if s.products == nil {
		s.logger.Warn("store is not configured, serving static fallback catalog")
		if s.metrics != nil {
			s.metrics.RecordCatalogFallback()
		}
		return fallbackProducts(), nil
	}

	products, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Create валидирует и сохраняет новый товар, возвращая назначенный идентификатор.
// Без хранилища создание невозможно и возвращает ErrStoreUnavailable.
func (s *Service) Create(ctx context.Context, product domain.Product) (string, error) {
	if s.products == nil {
		return "", fmt.Errorf("%w: store is not configured", domain.ErrStoreUnavailable)
	}

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return "", &domain.ValidationError{Violations: errs}
	}

	id, err := s.products.Insert(ctx, product)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordProductCreated()
	}
	s.logger.WithFields(log.Fields{
		"product_id": id,
		"title":      product.Title,
	}).Info("product created")

	return id, nil
}

// fallbackProducts — статический каталог, который отдаётся при недоступном хранилище.
func fallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Title:       "Rose Luxe Perfume Gift Set",
			Description: "An elegant duo of eau de parfum and travel spray in a velvet keepsake box.",
			Price:       89.0,
			Category:    "Fragrances",
			Tags:        []string{"perfume", "valentine", "luxury", "gift"},
			Images: []domain.ProductImage{
				{URL: "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd", Alt: "Perfume bottle"},
			},
			Rating:   4.9,
			InStock:  true,
			StockQty: 120,
		},
	}
}
