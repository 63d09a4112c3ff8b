package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(eventType string, value string) *sarama.ConsumerMessage {
	msg := &sarama.ConsumerMessage{Topic: TopicPaymentScheduled, Value: []byte(value)}
	if eventType != "" {
		msg.Headers = []*sarama.RecordHeader{
			{Key: []byte(HeaderEventType), Value: []byte(eventType)},
			{Key: []byte(HeaderEventID), Value: []byte("evt-1")},
		}
	}
	return msg
}

func TestHandleMessageDispatchesByEventType(t *testing.T) {
	c := newConsumer(nil, "payments-api", []string{TopicPaymentScheduled})

	var got []byte
	c.RegisterHandler(EventTypePaymentScheduled, func(_ context.Context, payload []byte) error {
		got = payload
		return nil
	})

	require.NoError(t, c.handleMessage(context.Background(), message(EventTypePaymentScheduled, `{"recipient":"Acme"}`)))
	assert.JSONEq(t, `{"recipient":"Acme"}`, string(got))
}

func TestHandleMessageSkipsUnroutable(t *testing.T) {
	c := newConsumer(nil, "payments-api", []string{TopicPaymentScheduled})
	c.RegisterHandler(EventTypePaymentScheduled, func(context.Context, []byte) error {
		t.Fatal("handler must not run")
		return nil
	})

	assert.ErrorIs(t, c.handleMessage(context.Background(), message("", `{}`)), ErrMissingEventType)
	assert.ErrorIs(t, c.handleMessage(context.Background(), message("payment.refunded", `{}`)), ErrUnknownEventType)
}

func TestHandleMessageReturnsHandlerError(t *testing.T) {
	c := newConsumer(nil, "payments-api", []string{TopicPaymentScheduled})
	boom := errors.New("boom")
	c.RegisterHandler(EventTypePaymentScheduled, func(context.Context, []byte) error { return boom })

	assert.ErrorIs(t, c.handleMessage(context.Background(), message(EventTypePaymentScheduled, `{}`)), boom)
}

func TestCloseWithoutGroup(t *testing.T) {
	c := newConsumer(nil, "payments-api", nil)
	assert.NoError(t, c.Close())
}
