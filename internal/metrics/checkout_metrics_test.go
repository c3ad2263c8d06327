package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewCheckoutMetrics(t *testing.T) {
	m := newCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	if m == nil {
		t.Fatal("newCheckoutMetricsWithRegisterer should not return nil")
	}
	if m.ordersPlaced == nil {
		t.Error("ordersPlaced counter should not be nil")
	}
	if m.checkoutFailed == nil {
		t.Error("checkoutFailed counter should not be nil")
	}
	if m.persistenceFailures == nil {
		t.Error("persistenceFailures counter should not be nil")
	}
	if m.catalogFallbacks == nil {
		t.Error("catalogFallbacks counter should not be nil")
	}
	if m.productsCreated == nil {
		t.Error("productsCreated counter should not be nil")
	}
	if m.checkoutDuration == nil {
		t.Error("checkoutDuration histogram should not be nil")
	}
	if m.orderTotal == nil {
		t.Error("orderTotal histogram should not be nil")
	}
}

func TestNewCheckoutMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	// Повторная регистрация в том же registry должна вернуть существующие коллекторы.
	first := newCheckoutMetricsWithRegisterer(reg)
	second := newCheckoutMetricsWithRegisterer(reg)

	first.RecordOrderPlaced(96.12)
	second.RecordOrderPlaced(82.59)

	metric := &dto.Metric{}
	if err := first.ordersPlaced.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected shared counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordOrderPlaced(t *testing.T) {
	m := newCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordOrderPlaced(96.12)

	metric := &dto.Metric{}
	if err := m.ordersPlaced.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1.0 {
		t.Errorf("expected counter value 1.0, got %f", metric.Counter.GetValue())
	}

	histMetric := &dto.Metric{}
	if err := m.orderTotal.Write(histMetric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if histMetric.Histogram.GetSampleCount() != 1 {
		t.Errorf("expected 1 total sample, got %d", histMetric.Histogram.GetSampleCount())
	}
	if histMetric.Histogram.GetSampleSum() != 96.12 {
		t.Errorf("expected sample sum 96.12, got %f", histMetric.Histogram.GetSampleSum())
	}
}

func TestRecordCounters(t *testing.T) {
	m := newCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordCheckoutFailed()
	m.RecordCheckoutFailed()
	m.RecordPersistenceFailure()
	m.RecordCatalogFallback()
	m.RecordProductCreated()

	cases := []struct {
		name    string
		counter prometheus.Counter
		want    float64
	}{
		{"checkoutFailed", m.checkoutFailed, 2},
		{"persistenceFailures", m.persistenceFailures, 1},
		{"catalogFallbacks", m.catalogFallbacks, 1},
		{"productsCreated", m.productsCreated, 1},
	}

	for _, tc := range cases {
		metric := &dto.Metric{}
		if err := tc.counter.Write(metric); err != nil {
			t.Fatalf("failed to write %s: %v", tc.name, err)
		}
		if metric.Counter.GetValue() != tc.want {
			t.Errorf("%s: expected %f, got %f", tc.name, tc.want, metric.Counter.GetValue())
		}
	}
}

func TestRecordCheckoutDuration(t *testing.T) {
	m := newCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordCheckoutDuration(150 * time.Millisecond)

	metric := &dto.Metric{}
	if err := m.checkoutDuration.Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 1 {
		t.Errorf("expected 1 sample, got %d", metric.Histogram.GetSampleCount())
	}
	if metric.Histogram.GetSampleSum() != 0.15 {
		t.Errorf("expected sample sum 0.15, got %f", metric.Histogram.GetSampleSum())
	}
}
