package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes outbox events to a durable topic exchange. The
// routing key is the event topic.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher returns a log-only publisher when no broker URL is configured.
func NewPublisher(cfg config.BrokerConfig) (shared.EventPublisher, func(), error) {
	if cfg.AMQPURL == "" {
		slog.Info("no broker configured, events are logged only")
		return LogPublisher{}, func() {}, nil
	}

	p := &AMQPPublisher{url: cfg.AMQPURL, exchange: cfg.Exchange}
	if err := p.connect(); err != nil {
		return nil, nil, err
	}

	return p, p.Close, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "amqp channel open")
	}

	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "amqp exchange declare")
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if err := p.connect(); err != nil {
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         topic,
		Body:         payload,
	}

	if err := p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	); err != nil {
		return errs.Wrap(err, "amqp publish")
	}
	return nil
}

func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *AMQPPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// LogPublisher stands in for the broker in local setups.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	slog.InfoContext(ctx, "event published", "topic", topic, "payload", string(payload))
	return nil
}
