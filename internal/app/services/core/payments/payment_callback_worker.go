package payments

import (
	"context"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/app/services/shared/paymentqueue"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

const (
	workerPollInterval = 5 * time.Second
	workerBatchSize    = 10
	workerLockTTL      = 30 * time.Second
)

// callbackQueue is the consumer side of the payment queue.
type callbackQueue interface {
	FetchN(ctx context.Context, n int) ([]paymentqueue.QueuedCallback, error)
	Ack(deliveryTag uint64) error
	Reenqueue(ctx context.Context, message *requests.PaymentCallbackMessage) error
	EnqueueToDeadQueue(ctx context.Context, message *requests.PaymentCallbackMessage) error
}

// CallbackWorker drains the payment callback queue in the background.
// A redis lock keeps a single instance draining at a time, so the
// service can run with several replicas without double-processing.
type CallbackWorker struct {
	PaymentUsecase    contracts.PaymentUsecase
	PaymentRepository contracts.PaymentRepository
	Queue             callbackQueue
	LockerService     contracts.LockerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewCallbackWorker(
	paymentUsecase contracts.PaymentUsecase,
	paymentRepository contracts.PaymentRepository,
	queue *paymentqueue.Service,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *CallbackWorker {
	return &CallbackWorker{
		PaymentUsecase:    paymentUsecase,
		PaymentRepository: paymentRepository,
		Queue:             queue,
		LockerService:     lockerService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// Start launches the polling loop and returns a stop function that
// blocks until the loop has drained its current batch.
func (w *CallbackWorker) Start() func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(workerPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.drainOnce(ctx)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (w *CallbackWorker) drainOnce(ctx context.Context) {
	acquired, lockValue, err := w.LockerService.TryLock(ctx, constvars.PaymentWorkerLockKey, workerLockTTL)
	if err != nil {
		w.Log.Error("CallbackWorker.drainOnce error acquiring worker lock", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if unlockErr := w.LockerService.Unlock(ctx, constvars.PaymentWorkerLockKey, lockValue); unlockErr != nil {
			w.Log.Error("CallbackWorker.drainOnce error releasing worker lock", zap.Error(unlockErr))
		}
	}()

	items, err := w.Queue.FetchN(ctx, workerBatchSize)
	if err != nil {
		w.Log.Error("CallbackWorker.drainOnce error fetching messages", zap.Error(err))
		return
	}

	for i := range items {
		w.processOne(ctx, &items[i])

		// Applying a callback can involve slow downstream calls, so the
		// lock TTL is extended between messages to keep a long batch
		// from outliving it.
		if refreshErr := w.LockerService.Refresh(ctx, constvars.PaymentWorkerLockKey, lockValue, workerLockTTL); refreshErr != nil {
			w.Log.Error("CallbackWorker.drainOnce error refreshing worker lock", zap.Error(refreshErr))
			return
		}
	}
}

// processOne acks the delivery regardless of the outcome: failures go
// back through Reenqueue with a bumped counter, or to the DLQ once the
// retry budget is spent. Leaving deliveries unacked would block the
// channel's prefetch window.
func (w *CallbackWorker) processOne(ctx context.Context, item *paymentqueue.QueuedCallback) {
	message := item.Message
	w.Log.Info("CallbackWorker.processOne called",
		zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
		zap.String(constvars.LoggingPaymentLinkIDKey, message.PaymentLinkID),
	)

	err := w.applyCallback(ctx, &message)

	if ackErr := w.Queue.Ack(item.DeliveryTag); ackErr != nil {
		w.Log.Error("CallbackWorker.processOne error acking delivery",
			zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
			zap.Error(ackErr),
		)
	}

	if err == nil {
		w.Log.Info("CallbackWorker.processOne succeeded",
			zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
		)
		return
	}

	w.Log.Error("CallbackWorker.processOne error applying callback",
		zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
		zap.Int(constvars.LoggingQueueMessageFailedCntKey, message.FailedCount),
		zap.Error(err),
	)

	message.FailedCount++
	if message.FailedCount >= w.InternalConfig.Queue.ThrottleRetry {
		if dlqErr := w.Queue.EnqueueToDeadQueue(ctx, &message); dlqErr != nil {
			w.Log.Error("CallbackWorker.processOne error parking message",
				zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
				zap.Error(dlqErr),
			)
		}
		return
	}
	if requeueErr := w.Queue.Reenqueue(ctx, &message); requeueErr != nil {
		w.Log.Error("CallbackWorker.processOne error requeueing message",
			zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
			zap.Error(requeueErr),
		)
	}
}

func (w *CallbackWorker) applyCallback(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	payment, err := w.PaymentRepository.FindByPaymentLinkID(ctx, message.PaymentLinkID)
	if err != nil {
		return err
	}
	if payment == nil {
		// The payment vanished after enqueue; nothing to apply.
		w.Log.Warn("CallbackWorker.applyCallback payment no longer exists",
			zap.String(constvars.LoggingPaymentLinkIDKey, message.PaymentLinkID),
		)
		return nil
	}

	return w.PaymentUsecase.RecordPaymentOutcome(ctx, payment.ID, models.PaymentStatus(message.Status))
}
