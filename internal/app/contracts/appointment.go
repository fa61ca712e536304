package contracts

import (
	"context"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAllBySession(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error)
	FindAllByConsultantID(ctx context.Context, session *models.Session, consultantID string, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	ConfirmAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	RescheduleAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error)
	AttachMeetLink(ctx context.Context, session *models.Session, appointmentID string, request *requests.AttachMeetLink) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByCustomerID(ctx context.Context, customerID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error)
	FindByConsultantID(ctx context.Context, consultantID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error)

	// TransitionStatus moves the appointment to next only when the stored
	// status and version still match; the version is incremented with the
	// same write. Returns the updated appointment, or nil when the guard
	// missed.
	TransitionStatus(ctx context.Context, appointmentID string, expected models.AppointmentStatus, expectedVersion int64, next models.AppointmentStatus) (*models.Appointment, error)

	SetMeetLink(ctx context.Context, appointmentID, meetLink string) error
	SetRescheduledTo(ctx context.Context, appointmentID, newAppointmentID string) error
	DeleteByID(ctx context.Context, appointmentID string) error
}
