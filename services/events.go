package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

const (
	EventPesananCreated       = "pesanan.created"
	EventPesananStatusChanged = "pesanan.status_changed"
	EventInvoiceSaved         = "invoice.saved"
)

// Event is the envelope written to the broker.
type Event struct {
	Type       string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// EventPublisher emits domain events after a successful write.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, interface{}) error { return nil }

// KafkaPublisher sends events to "<prefix>.<event type>" topics.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	prefix   string
}

// DialKafka opens a synchronous producer that waits for all in-sync replicas.
func DialKafka(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka producer: %w", err)
	}
	return producer, nil
}

func NewKafkaPublisher(producer sarama.SyncProducer, prefix string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, prefix: prefix}
}

func (p *KafkaPublisher) Topic(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	payload, err := json.Marshal(Event{Type: eventType, OccurredAt: time.Now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.Topic(eventType),
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s event: %w", eventType, err)
	}
	log.Printf("[EVENT] %s sent to %s partition %d offset %d", eventType, msg.Topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
