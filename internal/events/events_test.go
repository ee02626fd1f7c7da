package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"restaurant_system/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	declared    map[string]string
	published   []published
	failDeclare bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	if f.failDeclare {
		return errors.New("boom")
	}
	if f.declared == nil {
		f.declared = map[string]string{}
	}
	f.declared[name] = kind
	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func TestRabbitPublisherDeclaresExchanges(t *testing.T) {
	ch := &fakeChannel{}
	_, err := newRabbitPublisher(ch)
	require.NoError(t, err)
	assert.Equal(t, "topic", ch.declared[OrdersExchange])
	assert.Equal(t, "fanout", ch.declared[NotificationsExchange])
}

func TestRabbitPublisherDeclareFailure(t *testing.T) {
	_, err := newRabbitPublisher(&fakeChannel{failDeclare: true})
	assert.Error(t, err)
}

func TestPublishOrderPlacedRoutesByType(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newRabbitPublisher(ch)
	require.NoError(t, err)

	evt := OrderPlaced{OrderID: 7, OrderType: domain.OrderTypeDineIn, ItemCount: 3, TotalPrice: decimal.RequireFromString("42.50")}
	require.NoError(t, p.PublishOrderPlaced(context.Background(), evt))
	require.Len(t, ch.published, 1)

	got := ch.published[0]
	assert.Equal(t, OrdersExchange, got.exchange)
	assert.Equal(t, "kitchen.dine-in", got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var decoded OrderPlaced
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.EqualValues(t, 7, decoded.OrderID)
	assert.True(t, decoded.TotalPrice.Equal(evt.TotalPrice))
}

func TestPublishStatusChangedFansOut(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newRabbitPublisher(ch)
	require.NoError(t, err)

	evt := StatusChanged{OrderID: 1, From: domain.StatusReady, To: domain.StatusOutForDelivery, Actor: domain.RoleDriver}
	require.NoError(t, p.PublishStatusChanged(context.Background(), evt))
	require.Len(t, ch.published, 1)
	assert.Equal(t, NotificationsExchange, ch.published[0].exchange)
	assert.Empty(t, ch.published[0].key)
	assert.NoError(t, p.Close())
}

func TestLogPublisherNeverFails(t *testing.T) {
	var p Publisher = LogPublisher{}
	assert.NoError(t, p.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: 1}))
	assert.NoError(t, p.PublishStatusChanged(context.Background(), StatusChanged{OrderID: 1}))
	assert.NoError(t, p.Close())
}
