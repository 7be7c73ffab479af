// Package messaging публикует игровые события в очередь для внешних
// потребителей (аналитика, push-уведомления).
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

const publishTimeout = 5 * time.Second

// GameEventPayload — сообщение, уходящее в очередь.
type GameEventPayload struct {
	Event     models.EventName `json:"event"`
	Payload   map[string]any   `json:"payload,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// RabbitMQEventPublisher is a models.EventSink that forwards engine events
// into a durable RabbitMQ queue. Publish failures are logged and dropped:
// the event stream must never block narrative progress.
type RabbitMQEventPublisher struct {
	logger    *zap.Logger
	channel   *amqp.Channel
	queueName string
}

var _ models.EventSink = (*RabbitMQEventPublisher)(nil)

// NewRabbitMQEventPublisher opens a channel on the connection and declares
// the durable event queue. Параметры очереди должны совпадать с консьюмером.
func NewRabbitMQEventPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (*RabbitMQEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("event publisher: не удалось открыть канал: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("event publisher: не удалось объявить очередь %q: %w", queueName, err)
	}
	return &RabbitMQEventPublisher{
		logger:    logger.Named("EventPublisher"),
		channel:   ch,
		queueName: queueName,
	}, nil
}

// EmitEvent реализует models.EventSink.
func (p *RabbitMQEventPublisher) EmitEvent(name models.EventName, payload map[string]any) {
	body, err := json.Marshal(GameEventPayload{
		Event:     name,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		p.logger.Error("Не удалось сериализовать событие",
			zap.Error(err),
			zap.String("event", string(name)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
	if err != nil {
		p.logger.Error("Не удалось опубликовать событие",
			zap.Error(err),
			zap.String("event", string(name)),
			zap.String("queue", p.queueName))
		return
	}
	p.logger.Debug("Событие опубликовано",
		zap.String("event", string(name)),
		zap.String("queue", p.queueName))
}

// Close releases the underlying channel.
func (p *RabbitMQEventPublisher) Close() error {
	return p.channel.Close()
}
