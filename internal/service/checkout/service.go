// Package checkout оркестрирует оформление заказа: валидация запроса,
// разрешение товаров, расчёт цены и best-effort сохранение заказа.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
	"github.com/vladislavdragonenkov/giftnama/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/giftnama/internal/metrics"
	"github.com/vladislavdragonenkov/giftnama/internal/service/pricing"
)

// Позиция-заглушка, которой оцениваются строки корзины при
// несконфигурированном хранилище.
const (
	mockItemPrice = 49.0
	mockItemTitle = "Gift Item"
	mockItemImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30"
)

const defaultCountry = "US"

// Result — итог оформления заказа.
type Result struct {
	// Order — рассчитанный снимок заказа; Order.ID заполнен, если заказ сохранён.
	Order domain.Order
	// OrderID — идентификатор сохранённого заказа, пустой при несохранении.
	OrderID string
	// Persisted показывает, был ли заказ записан в хранилище.
	Persisted bool
	Message   string
}

// Service выполняет оформление заказа.
type Service struct {
	// products и orders nil, когда хранилище не сконфигурировано.
	products domain.ProductRepository
	orders   domain.OrderRepository
	// publisher nil-safe: без него события просто не публикуются.
	publisher domain.EventPublisher
	metrics   *metrics.CheckoutMetrics
	// strictPersistence превращает ошибку сохранения заказа в отказ
	// всего запроса вместо тихого возврата рассчитанной цены.
	strictPersistence bool
	logger            *log.Entry
}

// NewService конструирует сервис оформления заказов.
// publisher и metrics могут быть nil.
func NewService(
	products domain.ProductRepository,
	orders domain.OrderRepository,
	publisher domain.EventPublisher,
	m *metrics.CheckoutMetrics,
	strictPersistence bool,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "checkout-service")
	}
	return &Service{
		products:          products,
		orders:            orders,
		publisher:         publisher,
		metrics:           m,
		strictPersistence: strictPersistence,
		logger:            logger,
	}
}

// Checkout валидирует запрос, считает цену корзины и сохраняет заказ.
//
// Ошибки сохранения по умолчанию проглатываются: рассчитанный заказ всё
// равно возвращается вызывающему. При strictPersistence сохранение
// обязательно и его ошибка — отказ запроса.
func (s *Service) Checkout(ctx context.Context, req domain.CheckoutRequest) (Result, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	if errs := req.ValidateInvariants(); len(errs) > 0 {
		s.recordFailure()
		// Пустая корзина — отдельная ошибка, не смешиваем с полевыми.
		for _, err := range errs {
			if errors.Is(err, domain.ErrEmptyCart) {
				return Result{}, domain.ErrEmptyCart
			}
		}
		return Result{}, &domain.ValidationError{Violations: errs}
	}

	resolved, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		s.recordFailure()
		return Result{}, err
	}

	quote, err := pricing.Compute(resolved)
	if err != nil {
		s.recordFailure()
		return Result{}, err
	}

	customer := req.Customer
	if customer.Country == "" {
		customer.Country = defaultCountry
	}
	order := quote.Order(customer, time.Now().UTC())

	result := Result{
		Order:   order,
		Message: "Order placed successfully",
	}

	if s.orders != nil {
		id, err := s.orders.Insert(ctx, order)
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordPersistenceFailure()
			}
			if s.strictPersistence {
				s.recordFailure()
				return Result{}, fmt.Errorf("%w: persist order: %v", domain.ErrStoreUnavailable, err)
			}
			s.logger.WithError(err).Warn("order persistence failed, returning priced result anyway")
			s.publishEvent(kafka.EventTypeOrderPersistFailed, order)
		} else {
			result.OrderID = id
			result.Persisted = true
			result.Order.ID = id
			order.ID = id
		}
	}

	if result.Persisted || s.orders == nil {
		s.publishEvent(kafka.EventTypeOrderPlaced, order)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderPlaced(order.Total)
	}
	s.logger.WithFields(log.Fields{
		"order_id":  result.OrderID,
		"persisted": result.Persisted,
		"total":     order.Total,
		"items":     len(order.Items),
	}).Info("checkout completed")

	return result, nil
}

// resolveItems загружает снимки товаров для каждой позиции корзины в порядке запроса.
func (s *Service) resolveItems(ctx context.Context, items []domain.CartItem) ([]pricing.ResolvedItem, error) {
	resolved := make([]pricing.ResolvedItem, 0, len(items))
	for _, item := range items {
		if s.products == nil {
			// Хранилище не сконфигурировано: строка оценивается заглушкой.
			resolved = append(resolved, pricing.ResolvedItem{
				ProductID: item.ProductID,
				Title:     mockItemTitle,
				Price:     decimal.NewFromFloat(mockItemPrice),
				Quantity:  item.Quantity,
				Image:     mockItemImage,
			})
			continue
		}

		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		resolved = append(resolved, pricing.ResolvedItem{
			ProductID: item.ProductID,
			Title:     product.Title,
			Price:     decimal.NewFromFloat(product.Price),
			Quantity:  item.Quantity,
			Image:     product.PrimaryImage(),
		})
	}
	return resolved, nil
}

func (s *Service) publishEvent(eventType kafka.EventType, order domain.Order) {
	if s.publisher == nil {
		return
	}

	event := kafka.NewOrderEvent(
		eventType,
		order.ID,
		order.Customer.Email,
		string(order.Status),
		order.Total,
		len(order.Items),
	)
	key := order.ID
	if key == "" {
		key = order.Customer.Email
	}
	if err := s.publisher.PublishEvent(kafka.TopicOrderEvents, key, event); err != nil {
		// Публикация best-effort, оформление заказа из-за неё не падает.
		s.logger.WithError(err).Warn("failed to publish order event")
	}
}

func (s *Service) recordFailure() {
	if s.metrics != nil {
		s.metrics.RecordCheckoutFailed()
	}
}
