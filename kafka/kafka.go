// Package kafka wraps a Kafka producer and consumer and applies the toolkit's
// retry strategies to message delivery.
package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/go-again/again/retry"
)

// Producer writes messages to a single topic.
type Producer struct {
	Writer *kafka.Writer
}

// Consumer reads messages from a single topic as part of a consumer group.
type Consumer struct {
	Reader *kafka.Reader
}

// NewProducer creates a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Send writes one message.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// SendWithRetry writes one message, re-attempting delivery per the given
// strategy.
func (p *Producer) SendWithRetry(ctx context.Context, strat retry.Strategy, key, value []byte) error {
	return retry.DoContext(ctx, strat, func() error {
		return p.Send(ctx, key, value)
	})
}

// Close closes the underlying writer.
func (p *Producer) Close() error {
	return p.Writer.Close()
}

// NewConsumer creates a consumer for the given brokers, topic, and group.
func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	return &Consumer{
		Reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
	}
}

// Fetch reads the next message without committing it.
func (c *Consumer) Fetch(ctx context.Context) (kafka.Message, error) {
	return c.Reader.FetchMessage(ctx)
}

// FetchWithRetry reads the next message, re-attempting per the given strategy.
func (c *Consumer) FetchWithRetry(ctx context.Context, strat retry.Strategy) (kafka.Message, error) {
	return retry.DoValue(func() (kafka.Message, error) {
		return c.Fetch(ctx)
	}, strat)
}

// Commit marks the message as processed.
func (c *Consumer) Commit(ctx context.Context, msg kafka.Message) error {
	return c.Reader.CommitMessages(ctx, msg)
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.Reader.Close()
}
