package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/models"
	"counselink-service/internal/app/services/shared/paymentqueue"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCallbackQueue struct {
	items      []paymentqueue.QueuedCallback
	fetched    bool
	acked      []uint64
	reenqueued []requests.PaymentCallbackMessage
	parked     []requests.PaymentCallbackMessage
}

func (f *fakeCallbackQueue) FetchN(ctx context.Context, n int) ([]paymentqueue.QueuedCallback, error) {
	f.fetched = true
	if len(f.items) > n {
		return f.items[:n], nil
	}
	return f.items, nil
}

func (f *fakeCallbackQueue) Ack(deliveryTag uint64) error {
	f.acked = append(f.acked, deliveryTag)
	return nil
}

func (f *fakeCallbackQueue) Reenqueue(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	f.reenqueued = append(f.reenqueued, *message)
	return nil
}

func (f *fakeCallbackQueue) EnqueueToDeadQueue(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	f.parked = append(f.parked, *message)
	return nil
}

type fakeWorkerLocker struct {
	denyLock  bool
	refreshed []string
	unlocked  []string
}

func (f *fakeWorkerLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if f.denyLock {
		return false, "", nil
	}
	return true, "worker-lock", nil
}

func (f *fakeWorkerLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
}

func (f *fakeWorkerLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	f.refreshed = append(f.refreshed, key)
	return nil
}

type recordingPaymentUsecase struct {
	outcomes map[string]models.PaymentStatus
	applyErr error
}

func (f *recordingPaymentUsecase) CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error) {
	return nil, nil
}

func (f *recordingPaymentUsecase) EnqueueCallback(ctx context.Context, request *requests.PaymentCallback) error {
	return nil
}

func (f *recordingPaymentUsecase) RecordPaymentOutcome(ctx context.Context, paymentID string, status models.PaymentStatus) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	if f.outcomes == nil {
		f.outcomes = make(map[string]models.PaymentStatus)
	}
	f.outcomes[paymentID] = status
	return nil
}

func queuedCallback(tag uint64, linkID, status string, failedCount int) paymentqueue.QueuedCallback {
	return paymentqueue.QueuedCallback{
		DeliveryTag: tag,
		Message: requests.PaymentCallbackMessage{
			MessageID:     "msg-1",
			PaymentLinkID: linkID,
			Status:        status,
			FailedCount:   failedCount,
		},
	}
}

func newTestCallbackWorker(usecase *recordingPaymentUsecase, repo *fakePaymentRepository, queue *fakeCallbackQueue, locker *fakeWorkerLocker) *CallbackWorker {
	return &CallbackWorker{
		PaymentUsecase:    usecase,
		PaymentRepository: repo,
		Queue:             queue,
		LockerService:     locker,
		InternalConfig:    &config.InternalConfig{Queue: config.AppQueue{ThrottleRetry: 3}},
		Log:               zap.NewNop(),
	}
}

func TestCallbackWorkerDrain(t *testing.T) {
	ctx := context.Background()

	linkedPayment := func() *models.Payment {
		return &models.Payment{ID: "pay-1", AppointmentID: "appt-1", PaymentLinkID: "link-1", Status: models.PaymentPending}
	}

	t.Run("Applies Outcome And Acks", func(t *testing.T) {
		usecase := &recordingPaymentUsecase{}
		queue := &fakeCallbackQueue{items: []paymentqueue.QueuedCallback{queuedCallback(7, "link-1", "completed", 0)}}
		locker := &fakeWorkerLocker{}
		worker := newTestCallbackWorker(usecase, newFakePaymentRepository(linkedPayment()), queue, locker)

		worker.drainOnce(ctx)

		assert.Equal(t, models.PaymentCompleted, usecase.outcomes["pay-1"])
		assert.Equal(t, []uint64{7}, queue.acked)
		assert.Empty(t, queue.reenqueued)
	})

	t.Run("Refreshes Worker Lock Between Messages", func(t *testing.T) {
		usecase := &recordingPaymentUsecase{}
		queue := &fakeCallbackQueue{items: []paymentqueue.QueuedCallback{
			queuedCallback(1, "link-1", "completed", 0),
			queuedCallback(2, "link-1", "completed", 0),
		}}
		locker := &fakeWorkerLocker{}
		worker := newTestCallbackWorker(usecase, newFakePaymentRepository(linkedPayment()), queue, locker)

		worker.drainOnce(ctx)

		require.Len(t, locker.refreshed, 2)
		assert.Equal(t, constvars.PaymentWorkerLockKey, locker.refreshed[0])
		assert.Equal(t, []string{constvars.PaymentWorkerLockKey}, locker.unlocked)
	})

	t.Run("Skips Drain When Lock Held Elsewhere", func(t *testing.T) {
		queue := &fakeCallbackQueue{items: []paymentqueue.QueuedCallback{queuedCallback(1, "link-1", "completed", 0)}}
		worker := newTestCallbackWorker(&recordingPaymentUsecase{}, newFakePaymentRepository(), queue, &fakeWorkerLocker{denyLock: true})

		worker.drainOnce(ctx)

		assert.False(t, queue.fetched)
	})

	t.Run("Failed Apply Reenqueues With Bumped Counter", func(t *testing.T) {
		usecase := &recordingPaymentUsecase{applyErr: errors.New("downstream unavailable")}
		queue := &fakeCallbackQueue{items: []paymentqueue.QueuedCallback{queuedCallback(3, "link-1", "completed", 0)}}
		worker := newTestCallbackWorker(usecase, newFakePaymentRepository(linkedPayment()), queue, &fakeWorkerLocker{})

		worker.drainOnce(ctx)

		require.Len(t, queue.reenqueued, 1)
		assert.Equal(t, 1, queue.reenqueued[0].FailedCount)
		assert.Equal(t, []uint64{3}, queue.acked, "delivery must be acked even on failure")
	})

	t.Run("Exhausted Retries Park On Dead Queue", func(t *testing.T) {
		usecase := &recordingPaymentUsecase{applyErr: errors.New("downstream unavailable")}
		queue := &fakeCallbackQueue{items: []paymentqueue.QueuedCallback{queuedCallback(4, "link-1", "completed", 2)}}
		worker := newTestCallbackWorker(usecase, newFakePaymentRepository(linkedPayment()), queue, &fakeWorkerLocker{})

		worker.drainOnce(ctx)

		assert.Empty(t, queue.reenqueued)
		require.Len(t, queue.parked, 1)
		assert.Equal(t, 3, queue.parked[0].FailedCount)
	})

	t.Run("Vanished Payment Is Dropped Quietly", func(t *testing.T) {
		usecase := &recordingPaymentUsecase{}
		queue := &fakeCallbackQueue{items: []paymentqueue.QueuedCallback{queuedCallback(5, "link-gone", "completed", 0)}}
		worker := newTestCallbackWorker(usecase, newFakePaymentRepository(), queue, &fakeWorkerLocker{})

		worker.drainOnce(ctx)

		assert.Empty(t, usecase.outcomes)
		assert.Equal(t, []uint64{5}, queue.acked)
		assert.Empty(t, queue.reenqueued)
	})
}
