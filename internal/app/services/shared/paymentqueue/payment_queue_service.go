package paymentqueue

import (
	"context"
	"fmt"
	"sync"

	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service manages the RabbitMQ queues carrying payment-provider callbacks
// from the HTTP boundary to the background worker.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// QueuedCallback represents a fetched delivery and its decoded payload.
type QueuedCallback struct {
	DeliveryTag uint64
	Message     requests.PaymentCallbackMessage
}

// NewService initializes the queue service, declares durable queues,
// enables publisher confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.PaymentCallbackQueueName, // name
		true,                               // durable
		false,                              // autoDelete
		false,                              // exclusive
		false,                              // noWait
		nil,                                // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.PaymentCallbackDLQName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// Enqueue publishes a callback message to the standard queue with
// persistence and waits for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("PaymentQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return s.publish(ctx, constvars.PaymentCallbackQueueName, body)
}

// Reenqueue publishes the (possibly modified) message to the tail of the
// standard queue, typically after a failed processing attempt.
func (s *Service) Reenqueue(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return s.publish(ctx, constvars.PaymentCallbackQueueName, body)
}

// EnqueueToDeadQueue parks a message on the DLQ once its retry budget is
// spent.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	s.log.Warn("PaymentQueue.EnqueueToDeadQueue parking message",
		zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
		zap.Int(constvars.LoggingQueueMessageFailedCntKey, message.FailedCount),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return s.publish(ctx, constvars.PaymentCallbackDLQName, body)
}

// FetchN retrieves up to n messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, n int) ([]QueuedCallback, error) {
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedCallback, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(constvars.PaymentCallbackQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var payload requests.PaymentCallbackMessage
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// Invalid JSON goes straight to the DLQ to avoid a poison
			// message loop.
			_ = d.Ack(false)
			_ = s.publish(ctx, constvars.PaymentCallbackDLQName, d.Body)
			continue
		}
		items = append(items, QueuedCallback{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	return items, nil
}

// Ack acknowledges a message by delivery tag.
func (s *Service) Ack(deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

func (s *Service) Close() error {
	return s.ch.Close()
}

func (s *Service) publish(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrQueuePublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublishMessage(ctx.Err(), queue)
	}
	return nil
}
