package payments

import (
	"context"
	"testing"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepository struct {
	payments map[string]*models.Payment
	statuses map[string]models.PaymentStatus
}

func newFakePaymentRepository(payments ...*models.Payment) *fakePaymentRepository {
	repo := &fakePaymentRepository{
		payments: make(map[string]*models.Payment),
		statuses: make(map[string]models.PaymentStatus),
	}
	for _, payment := range payments {
		repo.payments[payment.ID] = payment
	}
	return repo
}

func (f *fakePaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	payment.ID = "pay-1"
	f.payments[payment.ID] = payment
	return payment.ID, nil
}

func (f *fakePaymentRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, ok := f.payments[paymentID]
	if !ok {
		return nil, nil
	}
	return payment, nil
}

func (f *fakePaymentRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	for _, payment := range f.payments {
		if payment.AppointmentID == appointmentID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepository) FindByPaymentLinkID(ctx context.Context, paymentLinkID string) (*models.Payment, error) {
	for _, payment := range f.payments {
		if payment.PaymentLinkID == paymentLinkID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepository) UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus) error {
	f.statuses[paymentID] = status
	if payment, ok := f.payments[paymentID]; ok {
		payment.Status = status
	}
	return nil
}

type fakeAppointmentReader struct {
	appointments map[string]*models.Appointment
}

func (f *fakeAppointmentReader) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (f *fakeAppointmentReader) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return appointment, nil
}

func (f *fakeAppointmentReader) FindByCustomerID(ctx context.Context, customerID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentReader) FindByConsultantID(ctx context.Context, consultantID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentReader) TransitionStatus(ctx context.Context, appointmentID string, expected models.AppointmentStatus, expectedVersion int64, next models.AppointmentStatus) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentReader) SetMeetLink(ctx context.Context, appointmentID, meetLink string) error {
	return nil
}

func (f *fakeAppointmentReader) SetRescheduledTo(ctx context.Context, appointmentID, newAppointmentID string) error {
	return nil
}

func (f *fakeAppointmentReader) DeleteByID(ctx context.Context, appointmentID string) error {
	return nil
}

type fakeAppointmentUsecase struct {
	confirmed []string
	cancelled []string
}

func (f *fakeAppointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) FindAllBySession(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentUsecase) FindAllByConsultantID(ctx context.Context, session *models.Session, consultantID string, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	f.confirmed = append(f.confirmed, appointmentID)
	return &responses.Appointment{ID: appointmentID, Status: "confirmed"}, nil
}

func (f *fakeAppointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	f.cancelled = append(f.cancelled, appointmentID)
	return &responses.Appointment{ID: appointmentID, Status: "cancelled"}, nil
}

func (f *fakeAppointmentUsecase) RescheduleAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) AttachMeetLink(ctx context.Context, session *models.Session, appointmentID string, request *requests.AttachMeetLink) (*responses.Appointment, error) {
	return nil, nil
}

type fakeGatewayService struct {
	lastRequest *requests.GatewayPaymentLink
}

func (f *fakeGatewayService) CreatePaymentLink(ctx context.Context, request *requests.GatewayPaymentLink) (*responses.GatewayPaymentLink, error) {
	f.lastRequest = request
	return &responses.GatewayPaymentLink{
		PaymentLinkID: "link-1",
		PaymentLink:   "https://pay.example.com/link-1",
	}, nil
}

func paymentTestConfig(cancelOnFailure bool) *config.InternalConfig {
	return &config.InternalConfig{
		Booking: config.AppBooking{CancelAppointmentOnPaymentFailure: cancelOnFailure},
	}
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{AccountID: "customer-1", Role: "customer"}

	pendingAppointment := func() *models.Appointment {
		return &models.Appointment{
			ID: "appt-1", CustomerID: "customer-1", ServiceID: "svc-1",
			Status: models.AppointmentPending,
		}
	}

	t.Run("Snapshots Price From Service Catalog", func(t *testing.T) {
		gateway := &fakeGatewayService{}
		paymentRepo := newFakePaymentRepository()
		uc := &paymentUsecase{
			PaymentRepository:     paymentRepo,
			AppointmentRepository: &fakeAppointmentReader{appointments: map[string]*models.Appointment{"appt-1": pendingAppointment()}},
			ServiceRepository:     newFakeServiceCatalog(&models.Service{ID: "svc-1", Price: 75, Currency: "USD"}),
			GatewayService:        gateway,
			InternalConfig:        paymentTestConfig(false),
			Log:                   zap.NewNop(),
		}

		response, err := uc.CreatePayment(ctx, session, &requests.CreatePayment{
			AppointmentID: "appt-1", PaymentMethod: "credit_card",
		})

		require.NoError(t, err)
		assert.Equal(t, float64(75), response.TotalPrice)
		assert.Equal(t, "https://pay.example.com/link-1", response.PaymentLink)
		assert.Equal(t, float64(75), gateway.lastRequest.Amount)
		assert.Equal(t, "appt-1", gateway.lastRequest.ExternalID)
	})

	t.Run("Rejects Duplicate Payment", func(t *testing.T) {
		uc := &paymentUsecase{
			PaymentRepository:     newFakePaymentRepository(&models.Payment{ID: "pay-0", AppointmentID: "appt-1"}),
			AppointmentRepository: &fakeAppointmentReader{appointments: map[string]*models.Appointment{"appt-1": pendingAppointment()}},
			ServiceRepository:     newFakeServiceCatalog(),
			GatewayService:        &fakeGatewayService{},
			InternalConfig:        paymentTestConfig(false),
			Log:                   zap.NewNop(),
		}

		_, err := uc.CreatePayment(ctx, session, &requests.CreatePayment{AppointmentID: "appt-1", PaymentMethod: "credit_card"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Rejects Foreign Appointment", func(t *testing.T) {
		appointment := pendingAppointment()
		appointment.CustomerID = "someone-else"
		uc := &paymentUsecase{
			PaymentRepository:     newFakePaymentRepository(),
			AppointmentRepository: &fakeAppointmentReader{appointments: map[string]*models.Appointment{"appt-1": appointment}},
			ServiceRepository:     newFakeServiceCatalog(),
			GatewayService:        &fakeGatewayService{},
			InternalConfig:        paymentTestConfig(false),
			Log:                   zap.NewNop(),
		}

		_, err := uc.CreatePayment(ctx, session, &requests.CreatePayment{AppointmentID: "appt-1", PaymentMethod: "credit_card"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Rejects Confirmed Appointment", func(t *testing.T) {
		appointment := pendingAppointment()
		appointment.Status = models.AppointmentConfirmed
		uc := &paymentUsecase{
			PaymentRepository:     newFakePaymentRepository(),
			AppointmentRepository: &fakeAppointmentReader{appointments: map[string]*models.Appointment{"appt-1": appointment}},
			ServiceRepository:     newFakeServiceCatalog(),
			GatewayService:        &fakeGatewayService{},
			InternalConfig:        paymentTestConfig(false),
			Log:                   zap.NewNop(),
		}

		_, err := uc.CreatePayment(ctx, session, &requests.CreatePayment{AppointmentID: "appt-1", PaymentMethod: "credit_card"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestRecordPaymentOutcome(t *testing.T) {
	ctx := context.Background()

	pendingPayment := func() *models.Payment {
		return &models.Payment{
			ID: "pay-1", AppointmentID: "appt-1", Status: models.PaymentPending,
			Date: time.Now(),
		}
	}

	t.Run("Completed Confirms Appointment", func(t *testing.T) {
		appointmentUC := &fakeAppointmentUsecase{}
		uc := &paymentUsecase{
			PaymentRepository:  newFakePaymentRepository(pendingPayment()),
			AppointmentUsecase: appointmentUC,
			InternalConfig:     paymentTestConfig(false),
			Log:                zap.NewNop(),
		}

		err := uc.RecordPaymentOutcome(ctx, "pay-1", models.PaymentCompleted)

		require.NoError(t, err)
		assert.Equal(t, []string{"appt-1"}, appointmentUC.confirmed)
	})

	t.Run("Same Outcome Twice Is NoOp", func(t *testing.T) {
		appointmentUC := &fakeAppointmentUsecase{}
		payment := pendingPayment()
		payment.Status = models.PaymentCompleted
		uc := &paymentUsecase{
			PaymentRepository:  newFakePaymentRepository(payment),
			AppointmentUsecase: appointmentUC,
			InternalConfig:     paymentTestConfig(false),
			Log:                zap.NewNop(),
		}

		err := uc.RecordPaymentOutcome(ctx, "pay-1", models.PaymentCompleted)

		require.NoError(t, err)
		assert.Empty(t, appointmentUC.confirmed, "redelivered outcome must not re-confirm")
	})

	t.Run("Failed Leaves Appointment By Default", func(t *testing.T) {
		appointmentUC := &fakeAppointmentUsecase{}
		uc := &paymentUsecase{
			PaymentRepository:  newFakePaymentRepository(pendingPayment()),
			AppointmentUsecase: appointmentUC,
			InternalConfig:     paymentTestConfig(false),
			Log:                zap.NewNop(),
		}

		err := uc.RecordPaymentOutcome(ctx, "pay-1", models.PaymentFailed)

		require.NoError(t, err)
		assert.Empty(t, appointmentUC.cancelled)
	})

	t.Run("Failed Cancels When AutoCancel Enabled", func(t *testing.T) {
		appointmentUC := &fakeAppointmentUsecase{}
		uc := &paymentUsecase{
			PaymentRepository:  newFakePaymentRepository(pendingPayment()),
			AppointmentUsecase: appointmentUC,
			InternalConfig:     paymentTestConfig(true),
			Log:                zap.NewNop(),
		}

		err := uc.RecordPaymentOutcome(ctx, "pay-1", models.PaymentFailed)

		require.NoError(t, err)
		assert.Equal(t, []string{"appt-1"}, appointmentUC.cancelled)
	})

	t.Run("Unknown Payment", func(t *testing.T) {
		uc := &paymentUsecase{
			PaymentRepository: newFakePaymentRepository(),
			InternalConfig:    paymentTestConfig(false),
			Log:               zap.NewNop(),
		}

		err := uc.RecordPaymentOutcome(ctx, "missing", models.PaymentCompleted)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

type fakeCallbackPublisher struct {
	messages []requests.PaymentCallbackMessage
}

func (f *fakeCallbackPublisher) Enqueue(ctx context.Context, message *requests.PaymentCallbackMessage) error {
	f.messages = append(f.messages, *message)
	return nil
}

func TestEnqueueCallback(t *testing.T) {
	ctx := context.Background()

	linkedPayment := func() *models.Payment {
		return &models.Payment{ID: "pay-1", AppointmentID: "appt-1", PaymentLinkID: "link-1", Status: models.PaymentPending}
	}

	newEnqueueUsecase := func(repo *fakePaymentRepository, publisher *fakeCallbackPublisher) *paymentUsecase {
		return &paymentUsecase{
			PaymentRepository: repo,
			Queue:             publisher,
			InternalConfig:    paymentTestConfig(false),
			Log:               zap.NewNop(),
		}
	}

	t.Run("Queues Completed Callback", func(t *testing.T) {
		publisher := &fakeCallbackPublisher{}
		uc := newEnqueueUsecase(newFakePaymentRepository(linkedPayment()), publisher)

		err := uc.EnqueueCallback(ctx, &requests.PaymentCallback{PaymentLinkID: "link-1", Status: "completed"})

		require.NoError(t, err)
		require.Len(t, publisher.messages, 1)
		assert.Equal(t, "completed", publisher.messages[0].Status)
		assert.Equal(t, "link-1", publisher.messages[0].PaymentLinkID)
		assert.NotEmpty(t, publisher.messages[0].MessageID)
	})

	t.Run("Expired Callback Is Queued As Failed", func(t *testing.T) {
		publisher := &fakeCallbackPublisher{}
		uc := newEnqueueUsecase(newFakePaymentRepository(linkedPayment()), publisher)

		err := uc.EnqueueCallback(ctx, &requests.PaymentCallback{PaymentLinkID: "link-1", Status: "expired"})

		require.NoError(t, err)
		require.Len(t, publisher.messages, 1)
		assert.Equal(t, string(models.PaymentFailed), publisher.messages[0].Status)
	})

	t.Run("Unknown Link Gets 404", func(t *testing.T) {
		publisher := &fakeCallbackPublisher{}
		uc := newEnqueueUsecase(newFakePaymentRepository(), publisher)

		err := uc.EnqueueCallback(ctx, &requests.PaymentCallback{PaymentLinkID: "link-gone", Status: "completed"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Empty(t, publisher.messages)
	})
}

type fakeServiceCatalog struct {
	services map[string]*models.Service
}

func newFakeServiceCatalog(services ...*models.Service) *fakeServiceCatalog {
	catalog := &fakeServiceCatalog{services: make(map[string]*models.Service)}
	for _, service := range services {
		catalog.services[service.ID] = service
	}
	return catalog
}

func (f *fakeServiceCatalog) CreateService(ctx context.Context, service *models.Service) (string, error) {
	return service.ID, nil
}

func (f *fakeServiceCatalog) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	service, ok := f.services[serviceID]
	if !ok {
		return nil, nil
	}
	return service, nil
}

func (f *fakeServiceCatalog) FindAll(ctx context.Context, page, pageSize int) ([]models.Service, int, error) {
	return nil, 0, nil
}
