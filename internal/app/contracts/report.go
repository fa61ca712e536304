package contracts

import (
	"context"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	SubmitReport(ctx context.Context, session *models.Session, request *requests.SubmitReport) (*responses.Report, error)
	FindByAppointmentID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Report, error)
}

type ReportRepository interface {
	// UpsertByAppointmentID creates the report when none exists for the
	// appointment and overwrites it otherwise. One report per appointment.
	UpsertByAppointmentID(ctx context.Context, report *models.Report) (*models.Report, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Report, error)
}
