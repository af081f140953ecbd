package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"globe/dodrio_loan_eligibility/configs"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(broker, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  broker,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// PublishDecision sends one decision event keyed by request id, retrying with
// linear backoff up to the configured attempt count.
func (p *Producer) PublishDecision(ctx context.Context, event models.DecisionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal decision event: %w", err)
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Value:          payload,
		Key:            []byte(event.RequestID),
	}

	retries := configs.KAFKA_PUBLISH_RETRIES
	for attempt := 0; attempt <= retries; attempt++ {
		err = p.producer.Produce(message, nil)
		if err == nil {
			logger.Info(ctx, "Decision event for request %s sent to topic %s", event.RequestID, p.topic)
			return nil
		}
		logger.Error(ctx, "Failed to send decision event on attempt %d: %v", attempt+1, err)
		time.Sleep(time.Second * time.Duration(attempt+1))
	}

	return fmt.Errorf("failed to produce decision event after %d attempts: %w", retries+1, err)
}

func (p *Producer) Close() {
	p.producer.Flush(15 * 1000)
	p.producer.Close()
}
