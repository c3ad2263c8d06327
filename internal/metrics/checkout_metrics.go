package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics содержит метрики оформления заказов и каталога.
type CheckoutMetrics struct {
	// Счётчики операций
	ordersPlaced        prometheus.Counter
	checkoutFailed      prometheus.Counter
	persistenceFailures prometheus.Counter
	catalogFallbacks    prometheus.Counter
	productsCreated     prometheus.Counter

	// Гистограммы
	checkoutDuration prometheus.Histogram
	orderTotal       prometheus.Histogram
}

// NewCheckoutMetrics создаёт новый экземпляр метрик в default registry.
func NewCheckoutMetrics() *CheckoutMetrics {
	return newCheckoutMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCheckoutMetricsWithRegisterer(registerer prometheus.Registerer) *CheckoutMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CheckoutMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "giftnama_orders_placed_total",
			Help: "Total number of successfully priced checkouts",
		}),
		checkoutFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "giftnama_checkout_failed_total",
			Help: "Total number of failed checkout requests",
		}),
		persistenceFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "giftnama_order_persistence_failures_total",
			Help: "Total number of orders that were priced but could not be persisted",
		}),
		catalogFallbacks: registerCounter(registerer, prometheus.CounterOpts{
			Name: "giftnama_catalog_fallbacks_total",
			Help: "Total number of product listings served from the static fallback",
		}),
		productsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "giftnama_products_created_total",
			Help: "Total number of products created",
		}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "giftnama_checkout_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		orderTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "giftnama_order_total_usd",
			Help:    "Distribution of order totals in USD",
			Buckets: []float64{10, 25, 50, 75, 100, 150, 250, 500, 1000},
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderPlaced увеличивает счётчик успешных оформлений и пишет итог заказа.
func (m *CheckoutMetrics) RecordOrderPlaced(total float64) {
	m.ordersPlaced.Inc()
	m.orderTotal.Observe(total)
}

// RecordCheckoutFailed увеличивает счётчик неудачных оформлений.
func (m *CheckoutMetrics) RecordCheckoutFailed() {
	m.checkoutFailed.Inc()
}

// RecordPersistenceFailure увеличивает счётчик несохранённых заказов.
func (m *CheckoutMetrics) RecordPersistenceFailure() {
	m.persistenceFailures.Inc()
}

// RecordCatalogFallback увеличивает счётчик выдач статического каталога.
func (m *CheckoutMetrics) RecordCatalogFallback() {
	m.catalogFallbacks.Inc()
}

// RecordProductCreated увеличивает счётчик созданных товаров.
func (m *CheckoutMetrics) RecordProductCreated() {
	m.productsCreated.Inc()
}

// RecordCheckoutDuration записывает длительность оформления заказа.
func (m *CheckoutMetrics) RecordCheckoutDuration(duration time.Duration) {
	m.checkoutDuration.Observe(duration.Seconds())
}
