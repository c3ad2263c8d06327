package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func TestProducer_PublishEvent(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		client: mockProducer,
		logger: log.WithField("component", "kafka-producer-test"),
	}

	// Настраиваем ожидания
	mockProducer.ExpectSendMessageAndSucceed()

	event := NewOrderEvent(
		EventTypeOrderPlaced,
		"68b0f0a1c2d3e4f5a6b7c8d9",
		"jane@example.com",
		"processing",
		96.12,
		1,
	)

	err := producer.PublishEvent(TopicOrderEvents, event.OrderID, event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Проверяем, что все ожидания выполнены
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		client: mockProducer,
		logger: log.WithField("component", "kafka-producer-test"),
	}

	// Настраиваем ожидание ошибки
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := NewOrderEvent(EventTypeOrderPlaced, "", "jane@example.com", "processing", 82.59, 2)

	err := producer.PublishEvent(TopicOrderEvents, "order-key", event)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOrderEvent(t *testing.T) {
	before := time.Now()
	event := NewOrderEvent(EventTypeOrderPlaced, "order-123", "jane@example.com", "processing", 96.12, 3)
	after := time.Now()

	if event.EventType != EventTypeOrderPlaced {
		t.Errorf("expected event type %s, got %s", EventTypeOrderPlaced, event.EventType)
	}
	if event.OrderID != "order-123" {
		t.Errorf("expected order id order-123, got %s", event.OrderID)
	}
	if event.CustomerEmail != "jane@example.com" {
		t.Errorf("unexpected customer email %s", event.CustomerEmail)
	}
	if event.Total != 96.12 {
		t.Errorf("expected total 96.12, got %v", event.Total)
	}
	if event.ItemCount != 3 {
		t.Errorf("expected item count 3, got %d", event.ItemCount)
	}
	if event.Timestamp.Before(before) || event.Timestamp.After(after) {
		t.Errorf("timestamp %v outside of [%v, %v]", event.Timestamp, before, after)
	}
}
