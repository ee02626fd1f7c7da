package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange names
const (
	OrdersExchange        = "orders_topic"
	NotificationsExchange = "notifications_fanout"
)

// amqpChannel is the part of *amqp.Channel the publisher needs
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes new orders on a topic exchange routed by order
// type and status changes on a fanout exchange
type RabbitPublisher struct {
	conn *amqp.Connection
	mu   sync.Mutex
	ch   amqpChannel
}

// DialRabbit connects to the broker and declares both exchanges
func DialRabbit(url string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	p, err := newRabbitPublisher(ch)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newRabbitPublisher(ch amqpChannel) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", OrdersExchange, err)
	}
	if err := ch.ExchangeDeclare(NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", NotificationsExchange, err)
	}
	return &RabbitPublisher{ch: ch}, nil
}

// OrderRoutingKey is kitchen.<type>, e.g. kitchen.dine-in
func OrderRoutingKey(evt OrderPlaced) string {
	return "kitchen." + strings.ToLower(string(evt.OrderType))
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, evt OrderPlaced) error {
	return p.publish(ctx, OrdersExchange, OrderRoutingKey(evt), evt, amqp.Persistent)
}

func (p *RabbitPublisher) PublishStatusChanged(ctx context.Context, evt StatusChanged) error {
	return p.publish(ctx, NotificationsExchange, "", evt, amqp.Transient)
}

func (p *RabbitPublisher) publish(ctx context.Context, exchange, key string, v any, mode uint8) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	p.mu.Lock() // amqp channels are not safe for concurrent publishing
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: mode,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", exchange, err)
	}
	return nil
}

// Close closes the channel and the connection
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil && !p.conn.IsClosed() {
		if cerr := p.conn.Close(); cerr != nil {
			return cerr
		}
	}
	return err
}
