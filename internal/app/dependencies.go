package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/domain"
	"github.com/vladislavdragonenkov/giftnama/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/giftnama/internal/metrics"
	"github.com/vladislavdragonenkov/giftnama/internal/storage/mongodb"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	// Store nil, когда хранилище не сконфигурировано или недоступно;
	// репозитории при этом тоже nil и сервисы работают в режиме деградации.
	Store    *mongodb.Store
	Products domain.ProductRepository
	Orders   domain.OrderRepository
	// Producer nil, когда Kafka не сконфигурирована.
	Producer *kafka.Producer
	Metrics  *metrics.CheckoutMetrics
	Logger   *log.Entry
}

// NewDependencies создаёт и инициализирует зависимости приложения.
// Недоступность хранилища и Kafka не фатальна: соответствующие поля
// остаются nil, сервисы умеют работать без них.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{
		Metrics: metrics.NewCheckoutMetrics(),
		Logger:  logger,
	}

	store, err := initStorage(ctx, cfg.DatabaseURL, cfg.DatabaseName, logger)
	if err == nil && store != nil {
		deps.Store = store
		deps.Products = mongodb.NewProductRepository(store)
		deps.Orders = mongodb.NewOrderRepository(store)
	}

	producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err == nil && producer != nil {
		deps.Producer = producer
	}

	return deps
}

// EventPublisher возвращает publisher для сервисов; nil когда Kafka выключена.
// Отдельный метод нужен, чтобы не передавать typed-nil указатель в интерфейс.
func (d *Dependencies) EventPublisher() domain.EventPublisher {
	if d.Producer == nil {
		return nil
	}
	return d.Producer
}

// Close освобождает внешние подключения.
func (d *Dependencies) Close(ctx context.Context) {
	closeKafka(d.Producer, d.Logger)

	if d.Store != nil {
		if err := d.Store.Close(ctx); err != nil {
			d.Logger.WithError(err).Warn("failed to close mongodb connection")
		} else {
			d.Logger.Info("mongodb connection closed")
		}
	}
}
