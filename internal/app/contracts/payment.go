package contracts

import (
	"context"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error)
	EnqueueCallback(ctx context.Context, request *requests.PaymentCallback) error

	// RecordPaymentOutcome applies a provider outcome to the payment and,
	// on completion, confirms the bound appointment. Safe to call more
	// than once for the same outcome.
	RecordPaymentOutcome(ctx context.Context, paymentID string, status models.PaymentStatus) error
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (paymentID string, err error)
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error)
	FindByPaymentLinkID(ctx context.Context, paymentLinkID string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus) error
}

type PaymentGatewayService interface {
	CreatePaymentLink(ctx context.Context, request *requests.GatewayPaymentLink) (*responses.GatewayPaymentLink, error)
}
