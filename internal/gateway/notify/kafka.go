package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
)

type counter interface {
	Inc()
}

// Kafka publishes notices to dedicated topics, keyed by order id so all
// events for one order land on the same partition.
type Kafka struct {
	producer      sarama.SyncProducer
	courierTopic  string
	customerTopic string
	sent          counter
}

// NewKafka creates a Kafka notifier. Returns nil when brokers or topics are
// not configured so callers can fall back to Nop.
func NewKafka(brokers []string, courierTopic, customerTopic string, sent counter) (*Kafka, error) {
	if len(brokers) == 0 || strings.TrimSpace(courierTopic) == "" || strings.TrimSpace(customerTopic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Kafka{
		producer:      producer,
		courierTopic:  courierTopic,
		customerTopic: customerTopic,
		sent:          sent,
	}, nil
}

func (k *Kafka) NotifyCourier(_ context.Context, n CourierNotice) error {
	return k.send(k.courierTopic, n.OrderID, n)
}

func (k *Kafka) NotifyCustomer(_ context.Context, n CustomerNotice) error {
	return k.send(k.customerTopic, n.OrderID, n)
}

func (k *Kafka) send(topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notice for order %s: %w", key, err)
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send notice to %s for order %s: %w", topic, key, err)
	}
	if k.sent != nil {
		k.sent.Inc()
	}
	return nil
}

func (k *Kafka) Close() error {
	if k == nil {
		return nil
	}
	return k.producer.Close()
}
