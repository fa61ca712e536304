package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository      contracts.ReportRepository
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	Log                   *zap.Logger
}

var (
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

func NewReportUsecase(
	reportRepository contracts.ReportRepository,
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	logger *zap.Logger,
) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = &reportUsecase{
			ReportRepository:      reportRepository,
			AppointmentRepository: appointmentRepository,
			SlotRepository:        slotRepository,
			Log:                   logger,
		}
	})
	return reportUsecaseInstance
}

// SubmitReport writes the session report for an appointment. The report
// is editable from ten minutes before the slot start until the slot end;
// before the window the request gets 425, after it 409. Submits inside
// the window upsert, so repeated saves overwrite the same document.
func (uc *reportUsecase) SubmitReport(ctx context.Context, session *models.Session, request *requests.SubmitReport) (*responses.Report, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.SubmitReport called",
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
	if session.Role != constvars.RoleAdmin && appointment.ConsultantID != session.AccountID {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("appointment %s belongs to another consultant", appointment.ID))
	}

	slot, err := uc.SlotRepository.FindByID(ctx, appointment.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	now := time.Now()
	windowOpen := slot.StartTime.Add(-time.Duration(constvars.ReportEditWindowLeadMinutes) * time.Minute)
	if now.Before(windowOpen) {
		return nil, exceptions.ErrReportTooEarly(fmt.Errorf("window opens at %s", windowOpen.Format(time.RFC3339)))
	}
	if now.After(slot.EndTime) {
		return nil, exceptions.ErrReportWindowClosed(fmt.Errorf("window closed at %s", slot.EndTime.Format(time.RFC3339)))
	}

	report := &models.Report{
		AppointmentID:   appointment.ID,
		AccountID:       appointment.CustomerID,
		ConsultantID:    appointment.ConsultantID,
		NameOfPatient:   request.NameOfPatient,
		Age:             int(request.Age),
		Gender:          request.Gender,
		Condition:       request.Condition,
		Notes:           request.Notes,
		Recommendations: request.Recommendations,
		Status:          request.Status,
	}

	saved, err := uc.ReportRepository.UpsertByAppointmentID(ctx, report)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.SubmitReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, saved.ID),
	)
	return buildReportResponse(saved), nil
}

func (uc *reportUsecase) FindByAppointmentID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Report, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.FindByAppointmentID called",
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

	// Customers may read the report of their own appointment; consultants
	// and admins the ones they are a party to.
	allowed := session.Role == constvars.RoleAdmin ||
		appointment.ConsultantID == session.AccountID ||
		appointment.CustomerID == session.AccountID
	if !allowed {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("account %s is not a party to appointment %s", session.AccountID, appointmentID))
	}

	report, err := uc.ReportRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}

	return buildReportResponse(report), nil
}

func buildReportResponse(report *models.Report) *responses.Report {
	return &responses.Report{
		ID:              report.ID,
		AppointmentID:   report.AppointmentID,
		ConsultantID:    report.ConsultantID,
		NameOfPatient:   report.NameOfPatient,
		Age:             report.Age,
		Gender:          report.Gender,
		Condition:       report.Condition,
		Notes:           report.Notes,
		Recommendations: report.Recommendations,
		Status:          report.Status,
		UpdatedAt:       report.UpdatedAt,
	}
}
