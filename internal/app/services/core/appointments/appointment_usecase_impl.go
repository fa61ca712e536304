package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	ServiceRepository     contracts.ServiceRepository
	LockerService         contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	serviceRepository contracts.ServiceRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			SlotRepository:        slotRepository,
			ServiceRepository:     serviceRepository,
			LockerService:         lockerService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books a slot for the requesting customer. The write
// path is: per-slot redis lock, conditional update available->booked,
// then the appointment insert. The conditional update is the actual
// double-booking guard; the lock only narrows the race window so losers
// fail fast instead of hitting the database.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		zap.String(constvars.LoggingAccountIDKey, session.AccountID),
	)

	slot, err := uc.SlotRepository.FindByID(ctx, request.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.Status != models.SlotAvailable {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s has status %s", slot.ID, slot.Status))
	}

	service, err := uc.ServiceRepository.FindByID(ctx, request.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	lockKey := constvars.SlotBookingLockKeyPrefix + slot.ID
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s is being booked by another request", slot.ID))
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.CreateAppointment error releasing slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	booked, err := uc.SlotRepository.TransitionStatus(ctx, slot.ID, models.SlotAvailable, models.SlotBooked)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s was booked concurrently", slot.ID))
	}

	appointment := &models.Appointment{
		SlotID:       slot.ID,
		CustomerID:   session.AccountID,
		ConsultantID: slot.ConsultantID,
		ServiceID:    service.ID,
		DateBooking:  slot.StartTime,
		Reason:       request.Reason,
		Status:       models.AppointmentPending,
		Version:      0,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		// Roll the slot back so the failed insert does not strand it.
		if _, rollbackErr := uc.SlotRepository.TransitionStatus(ctx, slot.ID, models.SlotBooked, models.SlotAvailable); rollbackErr != nil {
			uc.Log.Error("appointmentUsecase.CreateAppointment error rolling back slot status",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotIDKey, slot.ID),
				zap.Error(rollbackErr),
			)
		}
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
	)
	return buildAppointmentResponse(appointment, slot), nil
}

func (uc *appointmentUsecase) FindAllBySession(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAllBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, session.AccountID),
	)

	var (
		appointments []models.Appointment
		total        int
		err          error
	)
	if session.Role == constvars.RoleConsultant {
		appointments, total, err = uc.AppointmentRepository.FindByConsultantID(ctx, session.AccountID, filter, pagination.Page, pagination.PageSize)
	} else {
		appointments, total, err = uc.AppointmentRepository.FindByCustomerID(ctx, session.AccountID, filter, pagination.Page, pagination.PageSize)
	}
	if err != nil {
		return nil, 0, err
	}

	return uc.buildAppointmentListResponse(ctx, appointments), total, nil
}

func (uc *appointmentUsecase) FindAllByConsultantID(ctx context.Context, session *models.Session, consultantID string, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAllByConsultantID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, consultantID),
	)

	if session.Role != constvars.RoleAdmin && session.AccountID != consultantID {
		return nil, 0, exceptions.ErrRoleNotAllowed(fmt.Errorf("consultant %s cannot list appointments of %s", session.AccountID, consultantID))
	}

	appointments, total, err := uc.AppointmentRepository.FindByConsultantID(ctx, consultantID, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return uc.buildAppointmentListResponse(ctx, appointments), total, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingAppointmentNewStatusKey, request.Status),
	)

	switch models.AppointmentStatus(request.Status) {
	case models.AppointmentCancelled:
		return uc.CancelAppointment(ctx, session, appointmentID)
	case models.AppointmentConfirmed:
		// Confirmation normally arrives through the payment callback; the
		// manual route is an admin escape hatch.
		if session.Role != constvars.RoleAdmin {
			return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("account %s may not confirm manually", session.AccountID))
		}
		return uc.ConfirmAppointment(ctx, appointmentID)
	case models.AppointmentCompleted:
		return uc.completeAppointment(ctx, session, appointmentID)
	default:
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("status %s cannot be set through this route", request.Status))
	}
}

// ConfirmAppointment moves pending->confirmed. Confirming an appointment
// that is already confirmed is a no-op so provider callback redeliveries
// stay safe.
func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ConfirmAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.Status == models.AppointmentConfirmed {
		return buildAppointmentResponse(appointment, nil), nil
	}
	if appointment.Status != models.AppointmentPending {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s has status %s", appointmentID, appointment.Status))
	}

	updated, err := uc.AppointmentRepository.TransitionStatus(ctx, appointmentID, models.AppointmentPending, appointment.Version, models.AppointmentConfirmed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s changed concurrently", appointmentID))
	}

	uc.Log.Info("appointmentUsecase.ConfirmAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(updated, nil), nil
}

// CancelAppointment is allowed from pending or confirmed and releases the
// slot back to available. Cancelling an already-cancelled appointment is
// a no-op.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if session != nil {
		if err := uc.authorizeAppointmentActor(session, appointment); err != nil {
			return nil, err
		}
	}
	if appointment.Status == models.AppointmentCancelled {
		return buildAppointmentResponse(appointment, nil), nil
	}
	if !models.IsValidAppointmentTransition(appointment.Status, models.AppointmentCancelled) {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s has status %s", appointmentID, appointment.Status))
	}

	updated, err := uc.AppointmentRepository.TransitionStatus(ctx, appointmentID, appointment.Status, appointment.Version, models.AppointmentCancelled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s changed concurrently", appointmentID))
	}

	uc.releaseSlot(ctx, requestID, updated.SlotID)

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(updated, nil), nil
}

func (uc *appointmentUsecase) completeAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)

	if session.Role == constvars.RoleCustomer {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("customers may not complete appointments"))
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if err := uc.authorizeAppointmentActor(session, appointment); err != nil {
		return nil, err
	}
	if appointment.Status != models.AppointmentConfirmed {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s has status %s", appointmentID, appointment.Status))
	}

	slot, err := uc.SlotRepository.FindByID(ctx, appointment.SlotID)
	if err != nil {
		return nil, err
	}
	if slot != nil && time.Now().Before(slot.EndTime) {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s session has not ended yet", appointmentID))
	}

	updated, err := uc.AppointmentRepository.TransitionStatus(ctx, appointmentID, models.AppointmentConfirmed, appointment.Version, models.AppointmentCompleted)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s changed concurrently", appointmentID))
	}

	uc.Log.Info("appointmentUsecase.completeAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(updated, slot), nil
}

// RescheduleAppointment books the replacement slot, spawns a new pending
// appointment against it, then retires the old appointment as
// rescheduled with its slot released.
func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingSlotIDKey, request.NewSlotID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if err := uc.authorizeAppointmentActor(session, appointment); err != nil {
		return nil, err
	}
	if appointment.Status != models.AppointmentConfirmed {
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s has status %s", appointmentID, appointment.Status))
	}
	if request.NewSlotID == appointment.SlotID {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("new_slot_id must differ from the current slot"))
	}

	newSlot, err := uc.SlotRepository.FindByID(ctx, request.NewSlotID)
	if err != nil {
		return nil, err
	}
	if newSlot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if newSlot.Status != models.SlotAvailable {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s has status %s", newSlot.ID, newSlot.Status))
	}

	lockKey := constvars.SlotBookingLockKeyPrefix + newSlot.ID
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s is being booked by another request", newSlot.ID))
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.RescheduleAppointment error releasing slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	booked, err := uc.SlotRepository.TransitionStatus(ctx, newSlot.ID, models.SlotAvailable, models.SlotBooked)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s was booked concurrently", newSlot.ID))
	}

	replacement := &models.Appointment{
		SlotID:       newSlot.ID,
		CustomerID:   appointment.CustomerID,
		ConsultantID: newSlot.ConsultantID,
		ServiceID:    appointment.ServiceID,
		DateBooking:  newSlot.StartTime,
		Reason:       request.Reason,
		Status:       models.AppointmentPending,
		Version:      0,
	}

	replacementID, err := uc.AppointmentRepository.CreateAppointment(ctx, replacement)
	if err != nil {
		if _, rollbackErr := uc.SlotRepository.TransitionStatus(ctx, newSlot.ID, models.SlotBooked, models.SlotAvailable); rollbackErr != nil {
			uc.Log.Error("appointmentUsecase.RescheduleAppointment error rolling back new slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(rollbackErr),
			)
		}
		return nil, err
	}
	replacement.ID = replacementID

	retired, err := uc.AppointmentRepository.TransitionStatus(ctx, appointmentID, models.AppointmentConfirmed, appointment.Version, models.AppointmentRescheduled)
	if err != nil || retired == nil {
		// The old appointment moved under us; undo the replacement booking.
		if deleteErr := uc.AppointmentRepository.DeleteByID(ctx, replacementID); deleteErr != nil {
			uc.Log.Error("appointmentUsecase.RescheduleAppointment error deleting replacement appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(deleteErr),
			)
		}
		if _, rollbackErr := uc.SlotRepository.TransitionStatus(ctx, newSlot.ID, models.SlotBooked, models.SlotAvailable); rollbackErr != nil {
			uc.Log.Error("appointmentUsecase.RescheduleAppointment error rolling back new slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(rollbackErr),
			)
		}
		if err != nil {
			return nil, err
		}
		return nil, exceptions.ErrInvalidStateTransition(fmt.Errorf("appointment %s changed concurrently", appointmentID))
	}

	if err := uc.AppointmentRepository.SetRescheduledTo(ctx, appointmentID, replacementID); err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error linking replacement",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.releaseSlot(ctx, requestID, appointment.SlotID)

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("replacement_appointment_id", replacementID),
	)
	return buildAppointmentResponse(replacement, newSlot), nil
}

// AttachMeetLink sets the meeting URL on a confirmed appointment. The
// link may only be set from 24 hours before the slot start through the
// slot end.
func (uc *appointmentUsecase) AttachMeetLink(ctx context.Context, session *models.Session, appointmentID string, request *requests.AttachMeetLink) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.AttachMeetLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && appointment.ConsultantID != session.AccountID {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("appointment %s belongs to another consultant", appointmentID))
	}
	if appointment.Status != models.AppointmentConfirmed {
		return nil, exceptions.ErrMeetLinkOutsideWindow(fmt.Errorf("appointment %s has status %s", appointmentID, appointment.Status))
	}

	slot, err := uc.SlotRepository.FindByID(ctx, appointment.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	now := time.Now()
	windowOpen := slot.StartTime.Add(-time.Duration(constvars.MeetLinkWindowLeadHours) * time.Hour)
	if now.Before(windowOpen) || now.After(slot.EndTime) {
		return nil, exceptions.ErrMeetLinkOutsideWindow(fmt.Errorf("now %s outside [%s, %s]", now.Format(time.RFC3339), windowOpen.Format(time.RFC3339), slot.EndTime.Format(time.RFC3339)))
	}

	if err := uc.AppointmentRepository.SetMeetLink(ctx, appointmentID, request.MeetLink); err != nil {
		return nil, err
	}
	appointment.MeetLink = request.MeetLink

	uc.Log.Info("appointmentUsecase.AttachMeetLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment, slot), nil
}

func (uc *appointmentUsecase) authorizeAppointmentActor(session *models.Session, appointment *models.Appointment) error {
	switch session.Role {
	case constvars.RoleAdmin:
		return nil
	case constvars.RoleConsultant:
		if appointment.ConsultantID == session.AccountID {
			return nil
		}
	case constvars.RoleCustomer:
		if appointment.CustomerID == session.AccountID {
			return nil
		}
	}
	return exceptions.ErrAppointmentOwnerMismatch(fmt.Errorf("account %s is not a party to appointment %s", session.AccountID, appointment.ID))
}

// releaseSlot flips booked->available. A guard miss is fine: the slot
// was already released or moved on.
func (uc *appointmentUsecase) releaseSlot(ctx context.Context, requestID, slotID string) {
	released, err := uc.SlotRepository.TransitionStatus(ctx, slotID, models.SlotBooked, models.SlotAvailable)
	if err != nil {
		uc.Log.Error("appointmentUsecase.releaseSlot error releasing slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return
	}
	if !released {
		uc.Log.Warn("appointmentUsecase.releaseSlot guard missed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
		)
	}
}

func (uc *appointmentUsecase) buildAppointmentListResponse(ctx context.Context, appointments []models.Appointment) []responses.Appointment {
	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		slot, err := uc.SlotRepository.FindByID(ctx, appointments[i].SlotID)
		if err != nil {
			slot = nil
		}
		response = append(response, *buildAppointmentResponse(&appointments[i], slot))
	}
	return response
}

func buildAppointmentResponse(appointment *models.Appointment, slot *models.Slot) *responses.Appointment {
	response := &responses.Appointment{
		ID:            appointment.ID,
		SlotID:        appointment.SlotID,
		CustomerID:    appointment.CustomerID,
		ConsultantID:  appointment.ConsultantID,
		ServiceID:     appointment.ServiceID,
		DateBooking:   appointment.DateBooking,
		Reason:        appointment.Reason,
		Note:          appointment.Note,
		Status:        string(appointment.Status),
		MeetLink:      appointment.MeetLink,
		RescheduledTo: appointment.RescheduledTo,
	}
	if slot != nil {
		response.StartTime = slot.StartTime
		response.EndTime = slot.EndTime
	}
	return response
}
