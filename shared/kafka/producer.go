package kafka

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"
)

// Producer publishes keyword datasets for downstream campaign-construction
// consumers.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// ProducerConfig holds Kafka producer configuration.
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a synchronous Kafka producer. Publishes wait for all
// in-sync replicas so a confirmed dataset is never lost to a broker bounce.
func NewProducer(config ProducerConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Producer{producer: producer, topic: config.Topic}, nil
}

// Publish marshals the payload as JSON and sends it under the given key.
func (p *Producer) Publish(key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}

	log.Printf("Published keyword dataset to %s (partition=%d, offset=%d, key=%s)",
		p.topic, partition, offset, key)
	return nil
}

// Close shuts down the producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
