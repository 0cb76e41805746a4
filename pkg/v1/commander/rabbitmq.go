package commander

import (
	"context"
	"fmt"
	"time"
)

const defaultPublishTimeout = 5 * time.Second

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender sends RMQ messages to quick sync commands routing key.
type RabbitMQSender struct {
	publisher      RabbitMQPublisher
	cmdRoutingKey  string
	publishTimeout time.Duration
}

// NewRabbitMQSender returns new RabbitMQSender using provided publisher for sending messages to provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:      publisher,
		cmdRoutingKey:  cmdRoutingKey,
		publishTimeout: defaultPublishTimeout,
	}
}

// Send sends message to RabbitMQSender's routing key. Publishing is bounded by publish timeout.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, s.cmdRoutingKey, msg); err != nil {
		return fmt.Errorf("can't publish command: %w", err)
	}

	return nil
}
