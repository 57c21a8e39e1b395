// Package rabbitmq wraps an AMQP channel and applies the toolkit's retry
// strategies to message publishing.
package rabbitmq

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"github.com/go-again/again/retry"
)

// Publisher publishes messages to an exchange over an AMQP channel.
type Publisher struct {
	ch          *amqp091.Channel
	exchange    string
	contentType string
}

// PublishOption customizes a single publishing.
type PublishOption func(*amqp091.Publishing)

// WithHeaders sets the publishing headers.
func WithHeaders(headers amqp091.Table) PublishOption {
	return func(p *amqp091.Publishing) { p.Headers = headers }
}

// WithPersistent marks the message as persistent.
func WithPersistent() PublishOption {
	return func(p *amqp091.Publishing) { p.DeliveryMode = amqp091.Persistent }
}

// NewPublisher creates a publisher for the given channel and exchange.
func NewPublisher(ch *amqp091.Channel, exchange, contentType string) *Publisher {
	return &Publisher{
		ch:          ch,
		exchange:    exchange,
		contentType: contentType,
	}
}

// GetExchangeName returns the exchange the publisher targets.
func (p *Publisher) GetExchangeName() string {
	return p.exchange
}

// Publish sends one message to the exchange with the given routing key.
func (p *Publisher) Publish(ctx context.Context, body []byte, routingKey string, opts ...PublishOption) error {
	pub := amqp091.Publishing{
		ContentType: p.contentType,
		Body:        body,
	}
	for _, opt := range opts {
		opt(&pub)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, pub)
}

// PublishWithRetry sends one message, re-attempting delivery per the given
// strategy.
func (p *Publisher) PublishWithRetry(
	ctx context.Context,
	strat retry.Strategy,
	body []byte,
	routingKey string,
	opts ...PublishOption,
) error {
	return retry.DoContext(ctx, strat, func() error {
		return p.Publish(ctx, body, routingKey, opts...)
	})
}
