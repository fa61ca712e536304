package reports

import (
	"context"
	"testing"
	"time"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReportRepository struct {
	reports map[string]*models.Report
	upserts int
}

func newFakeReportRepository(reports ...*models.Report) *fakeReportRepository {
	repo := &fakeReportRepository{reports: make(map[string]*models.Report)}
	for _, report := range reports {
		repo.reports[report.AppointmentID] = report
	}
	return repo
}

func (f *fakeReportRepository) UpsertByAppointmentID(ctx context.Context, report *models.Report) (*models.Report, error) {
	f.upserts++
	existing, ok := f.reports[report.AppointmentID]
	if ok {
		report.ID = existing.ID
	} else {
		report.ID = "report-1"
	}
	report.UpdatedAt = time.Now()
	f.reports[report.AppointmentID] = report
	return report, nil
}

func (f *fakeReportRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Report, error) {
	report, ok := f.reports[appointmentID]
	if !ok {
		return nil, nil
	}
	return report, nil
}

type fakeAppointmentFinder struct {
	appointments map[string]*models.Appointment
}

func (f *fakeAppointmentFinder) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (f *fakeAppointmentFinder) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return appointment, nil
}

func (f *fakeAppointmentFinder) FindByCustomerID(ctx context.Context, customerID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentFinder) FindByConsultantID(ctx context.Context, consultantID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentFinder) TransitionStatus(ctx context.Context, appointmentID string, expected models.AppointmentStatus, expectedVersion int64, next models.AppointmentStatus) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentFinder) SetMeetLink(ctx context.Context, appointmentID, meetLink string) error {
	return nil
}

func (f *fakeAppointmentFinder) SetRescheduledTo(ctx context.Context, appointmentID, newAppointmentID string) error {
	return nil
}

func (f *fakeAppointmentFinder) DeleteByID(ctx context.Context, appointmentID string) error {
	return nil
}

type fakeSlotFinder struct {
	slots map[string]*models.Slot
}

func (f *fakeSlotFinder) CreateSlots(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	return slots, nil
}

func (f *fakeSlotFinder) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, nil
	}
	return slot, nil
}

func (f *fakeSlotFinder) FindWithFilter(ctx context.Context, filter *requests.SlotFilter, page, pageSize int) ([]models.Slot, int, error) {
	return nil, 0, nil
}

func (f *fakeSlotFinder) FindOverlapping(ctx context.Context, consultantID string, start, end time.Time) ([]models.Slot, error) {
	return nil, nil
}

func (f *fakeSlotFinder) TransitionStatus(ctx context.Context, slotID string, expected, next models.SlotStatus) (bool, error) {
	return false, nil
}

func (f *fakeSlotFinder) SoftDeleteByID(ctx context.Context, slotID string) (bool, error) {
	return false, nil
}

func newTestReportUsecase(reportRepo *fakeReportRepository, slotStart, slotEnd time.Time) *reportUsecase {
	return &reportUsecase{
		ReportRepository: reportRepo,
		AppointmentRepository: &fakeAppointmentFinder{appointments: map[string]*models.Appointment{
			"appt-1": {
				ID: "appt-1", SlotID: "slot-1", CustomerID: "customer-1",
				ConsultantID: "consultant-1", Status: models.AppointmentConfirmed,
			},
		}},
		SlotRepository: &fakeSlotFinder{slots: map[string]*models.Slot{
			"slot-1": {
				ID: "slot-1", ConsultantID: "consultant-1",
				StartTime: slotStart, EndTime: slotEnd,
				Status: models.SlotBooked,
			},
		}},
		Log: zap.NewNop(),
	}
}

func validSubmitRequest() *requests.SubmitReport {
	return &requests.SubmitReport{
		AppointmentID: "appt-1",
		NameOfPatient: "Jane Doe",
		Age:           34,
		Gender:        "female",
		Condition:     "generalized anxiety",
		Notes:         "responded well to grounding exercises",
	}
}

func TestSubmitReport(t *testing.T) {
	ctx := context.Background()
	consultant := &models.Session{AccountID: "consultant-1", Role: "consultant"}

	t.Run("Accepts Shortly Before Slot Start", func(t *testing.T) {
		reportRepo := newFakeReportRepository()
		uc := newTestReportUsecase(reportRepo, time.Now().Add(9*time.Minute), time.Now().Add(69*time.Minute))

		response, err := uc.SubmitReport(ctx, consultant, validSubmitRequest())

		require.NoError(t, err)
		assert.Equal(t, "appt-1", response.AppointmentID)
		assert.Equal(t, 1, reportRepo.upserts)
	})

	t.Run("Accepts During Slot", func(t *testing.T) {
		reportRepo := newFakeReportRepository()
		uc := newTestReportUsecase(reportRepo, time.Now().Add(-30*time.Minute), time.Now().Add(30*time.Minute))

		_, err := uc.SubmitReport(ctx, consultant, validSubmitRequest())

		require.NoError(t, err)
	})

	t.Run("Too Early Gets 425", func(t *testing.T) {
		uc := newTestReportUsecase(newFakeReportRepository(), time.Now().Add(11*time.Minute), time.Now().Add(71*time.Minute))

		_, err := uc.SubmitReport(ctx, consultant, validSubmitRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 425, customErr.StatusCode)
	})

	t.Run("After Slot End Gets 409", func(t *testing.T) {
		uc := newTestReportUsecase(newFakeReportRepository(), time.Now().Add(-2*time.Hour), time.Now().Add(-time.Minute))

		_, err := uc.SubmitReport(ctx, consultant, validSubmitRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Resubmit Overwrites Same Report", func(t *testing.T) {
		reportRepo := newFakeReportRepository()
		uc := newTestReportUsecase(reportRepo, time.Now().Add(-30*time.Minute), time.Now().Add(30*time.Minute))

		first, err := uc.SubmitReport(ctx, consultant, validSubmitRequest())
		require.NoError(t, err)

		updated := validSubmitRequest()
		updated.Notes = "added homework for next session"
		second, err := uc.SubmitReport(ctx, consultant, updated)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "resubmit must land on the same document")
		assert.Equal(t, "added homework for next session", second.Notes)
		assert.Len(t, reportRepo.reports, 1)
	})

	t.Run("Rejects Foreign Consultant", func(t *testing.T) {
		uc := newTestReportUsecase(newFakeReportRepository(), time.Now().Add(-30*time.Minute), time.Now().Add(30*time.Minute))
		other := &models.Session{AccountID: "consultant-2", Role: "consultant"}

		_, err := uc.SubmitReport(ctx, other, validSubmitRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Admin May Submit", func(t *testing.T) {
		uc := newTestReportUsecase(newFakeReportRepository(), time.Now().Add(-30*time.Minute), time.Now().Add(30*time.Minute))
		admin := &models.Session{AccountID: "admin-1", Role: "admin"}

		_, err := uc.SubmitReport(ctx, admin, validSubmitRequest())

		require.NoError(t, err)
	})
}

func TestFindReportByAppointmentID(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer Reads Own Report", func(t *testing.T) {
		reportRepo := newFakeReportRepository(&models.Report{ID: "report-1", AppointmentID: "appt-1"})
		uc := newTestReportUsecase(reportRepo, time.Now(), time.Now().Add(time.Hour))
		customer := &models.Session{AccountID: "customer-1", Role: "customer"}

		response, err := uc.FindByAppointmentID(ctx, customer, "appt-1")

		require.NoError(t, err)
		assert.Equal(t, "report-1", response.ID)
	})

	t.Run("Rejects Outsider", func(t *testing.T) {
		reportRepo := newFakeReportRepository(&models.Report{ID: "report-1", AppointmentID: "appt-1"})
		uc := newTestReportUsecase(reportRepo, time.Now(), time.Now().Add(time.Hour))
		outsider := &models.Session{AccountID: "customer-9", Role: "customer"}

		_, err := uc.FindByAppointmentID(ctx, outsider, "appt-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Missing Report Gets 404", func(t *testing.T) {
		uc := newTestReportUsecase(newFakeReportRepository(), time.Now(), time.Now().Add(time.Hour))
		customer := &models.Session{AccountID: "customer-1", Role: "customer"}

		_, err := uc.FindByAppointmentID(ctx, customer, "appt-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
