package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/app/services/shared/paymentqueue"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// callbackPublisher is the slice of the payment queue the usecase
// needs. The worker side lives in CallbackWorker.
type callbackPublisher interface {
	Enqueue(ctx context.Context, message *requests.PaymentCallbackMessage) error
}

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	AppointmentRepository contracts.AppointmentRepository
	ServiceRepository     contracts.ServiceRepository
	AppointmentUsecase    contracts.AppointmentUsecase
	GatewayService        contracts.PaymentGatewayService
	Queue                 callbackPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	serviceRepository contracts.ServiceRepository,
	appointmentUsecase contracts.AppointmentUsecase,
	gatewayService contracts.PaymentGatewayService,
	queue *paymentqueue.Service,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentRepository:     paymentRepository,
			AppointmentRepository: appointmentRepository,
			ServiceRepository:     serviceRepository,
			AppointmentUsecase:    appointmentUsecase,
			GatewayService:        gatewayService,
			Queue:                 queue,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// CreatePayment opens a payment for a pending appointment. The price is
// snapshotted from the service catalog at creation time so later price
// edits cannot change what an open payment charges.
func (uc *paymentUsecase) CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingAccountIDKey, session.AccountID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.CustomerID != session.AccountID {
		return nil, exceptions.ErrAppointmentOwnerMismatch(fmt.Errorf("appointment %s belongs to another customer", appointment.ID))
	}
	if appointment.Status != models.AppointmentPending {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s has status %s", appointment.ID, appointment.Status))
	}

	existing, err := uc.PaymentRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPaymentAlreadyExists(fmt.Errorf("payment %s already bound to appointment %s", existing.ID, appointment.ID))
	}

	service, err := uc.ServiceRepository.FindByID(ctx, appointment.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	link, err := uc.GatewayService.CreatePaymentLink(ctx, &requests.GatewayPaymentLink{
		ExternalID:  appointment.ID,
		Amount:      service.Price,
		Currency:    service.Currency,
		Method:      request.PaymentMethod,
		Description: request.Description,
	})
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		AppointmentID: appointment.ID,
		AccountID:     session.AccountID,
		TotalPrice:    service.Price,
		Currency:      service.Currency,
		PaymentMethod: request.PaymentMethod,
		Status:        models.PaymentPending,
		PaymentLinkID: link.PaymentLinkID,
		PaymentLink:   link.PaymentLink,
		Date:          time.Now(),
		Description:   request.Description,
	}

	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = paymentID

	uc.Log.Info("paymentUsecase.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
		zap.String(constvars.LoggingPaymentLinkIDKey, link.PaymentLinkID),
	)
	return buildPaymentResponse(payment), nil
}

// EnqueueCallback validates a provider callback and hands it to the
// queue. The HTTP boundary stays thin: the actual state change happens
// in the worker through RecordPaymentOutcome.
func (uc *paymentUsecase) EnqueueCallback(ctx context.Context, request *requests.PaymentCallback) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.EnqueueCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentLinkIDKey, request.PaymentLinkID),
		zap.String(constvars.LoggingPaymentStatusKey, request.Status),
	)

	payment, err := uc.PaymentRepository.FindByPaymentLinkID(ctx, request.PaymentLinkID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrPaymentNotFound(fmt.Errorf("no payment for link %s", request.PaymentLinkID))
	}

	// Providers report expiry as its own state; internally an expired
	// link is just a failed payment, so the distinction stops here.
	status := request.Status
	if status == "expired" {
		status = string(models.PaymentFailed)
	}

	message := &requests.PaymentCallbackMessage{
		MessageID:     uuid.New().String(),
		PaymentLinkID: request.PaymentLinkID,
		Status:        status,
		FailedCount:   0,
	}
	if err := uc.Queue.Enqueue(ctx, message); err != nil {
		return err
	}

	uc.Log.Info("paymentUsecase.EnqueueCallback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueMessageIDKey, message.MessageID),
	)
	return nil
}

// RecordPaymentOutcome applies the provider outcome. A completed payment
// confirms the bound appointment; a failed payment leaves it pending
// unless auto-cancel is switched on. Reapplying the same outcome is a
// no-op, which keeps callback redeliveries harmless.
func (uc *paymentUsecase) RecordPaymentOutcome(ctx context.Context, paymentID string, status models.PaymentStatus) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.RecordPaymentOutcome called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
		zap.String(constvars.LoggingPaymentStatusKey, string(status)),
	)

	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrPaymentNotFound(nil)
	}
	if payment.Status == status {
		return nil
	}

	if err := uc.PaymentRepository.UpdateStatus(ctx, paymentID, status); err != nil {
		return err
	}

	switch status {
	case models.PaymentCompleted:
		if _, err := uc.AppointmentUsecase.ConfirmAppointment(ctx, payment.AppointmentID); err != nil {
			return err
		}
	case models.PaymentFailed:
		if uc.InternalConfig.Booking.CancelAppointmentOnPaymentFailure {
			if _, err := uc.AppointmentUsecase.CancelAppointment(ctx, nil, payment.AppointmentID); err != nil {
				return err
			}
		}
	}

	uc.Log.Info("paymentUsecase.RecordPaymentOutcome succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
		zap.String(constvars.LoggingPaymentCallbackOutcomeKey, string(status)),
	)
	return nil
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	return &responses.Payment{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		TotalPrice:    payment.TotalPrice,
		Currency:      payment.Currency,
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		PaymentLink:   payment.PaymentLink,
		Date:          payment.Date,
	}
}
