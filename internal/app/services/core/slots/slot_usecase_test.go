package slots

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

type fakeSlotStore struct {
	slots   map[string]*models.Slot
	created []models.Slot
}

func newFakeSlotStore(slots ...*models.Slot) *fakeSlotStore {
	store := &fakeSlotStore{slots: make(map[string]*models.Slot)}
	for _, slot := range slots {
		store.slots[slot.ID] = slot
	}
	return store
}

func (f *fakeSlotStore) CreateSlots(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	for i := range slots {
		slots[i].ID = "slot-created"
	}
	f.created = append(f.created, slots...)
	return slots, nil
}

func (f *fakeSlotStore) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, nil
	}
	return slot, nil
}

func (f *fakeSlotStore) FindWithFilter(ctx context.Context, filter *requests.SlotFilter, page, pageSize int) ([]models.Slot, int, error) {
	var result []models.Slot
	for _, slot := range f.slots {
		result = append(result, *slot)
	}
	return result, len(result), nil
}

func (f *fakeSlotStore) FindOverlapping(ctx context.Context, consultantID string, start, end time.Time) ([]models.Slot, error) {
	var overlapping []models.Slot
	for _, slot := range f.slots {
		if slot.ConsultantID == consultantID && slot.Overlaps(start, end) {
			overlapping = append(overlapping, *slot)
		}
	}
	return overlapping, nil
}

func (f *fakeSlotStore) TransitionStatus(ctx context.Context, slotID string, expected, next models.SlotStatus) (bool, error) {
	slot, ok := f.slots[slotID]
	if !ok || slot.Status != expected {
		return false, nil
	}
	slot.Status = next
	return true, nil
}

func (f *fakeSlotStore) SoftDeleteByID(ctx context.Context, slotID string) (bool, error) {
	slot, ok := f.slots[slotID]
	if !ok || slot.Status != models.SlotAvailable {
		return false, nil
	}
	slot.Status = models.SlotCancelled
	return true, nil
}

func newTestSlotUsecase(store *fakeSlotStore) *slotUsecase {
	return &slotUsecase{SlotRepository: store, Log: zap.NewNop()}
}

func TestCreateSlots(t *testing.T) {
	ctx := context.Background()
	consultant := &models.Session{AccountID: "consultant-1", Role: "consultant"}
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)

	window := func(start, end time.Time) requests.SlotWindow {
		return requests.SlotWindow{
			StartTime: start.Format(time.RFC3339),
			EndTime:   end.Format(time.RFC3339),
		}
	}

	t.Run("Creates Non Overlapping Windows", func(t *testing.T) {
		store := newFakeSlotStore()
		uc := newTestSlotUsecase(store)

		response, err := uc.CreateSlots(ctx, consultant, &requests.CreateSlots{
			Windows: []requests.SlotWindow{
				window(base, base.Add(time.Hour)),
				window(base.Add(2*time.Hour), base.Add(3*time.Hour)),
			},
		})

		require.NoError(t, err)
		assert.Len(t, response, 2)
		assert.Equal(t, "available", response[0].Status)
		assert.Equal(t, "consultant-1", store.created[0].ConsultantID)
	})

	t.Run("Rejects Overlap With Existing Slot", func(t *testing.T) {
		store := newFakeSlotStore(&models.Slot{
			ID: "slot-1", ConsultantID: "consultant-1",
			StartTime: base, EndTime: base.Add(time.Hour),
			Status: models.SlotAvailable,
		})
		uc := newTestSlotUsecase(store)

		_, err := uc.CreateSlots(ctx, consultant, &requests.CreateSlots{
			Windows: []requests.SlotWindow{window(base.Add(30*time.Minute), base.Add(90*time.Minute))},
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Rejects Windows That Overlap Each Other", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotStore())

		_, err := uc.CreateSlots(ctx, consultant, &requests.CreateSlots{
			Windows: []requests.SlotWindow{
				window(base, base.Add(time.Hour)),
				window(base.Add(30*time.Minute), base.Add(90*time.Minute)),
			},
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Rejects Inverted Window", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotStore())

		_, err := uc.CreateSlots(ctx, consultant, &requests.CreateSlots{
			Windows: []requests.SlotWindow{window(base.Add(time.Hour), base)},
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()
	consultant := &models.Session{AccountID: "consultant-1", Role: "consultant"}

	availableSlot := func() *models.Slot {
		return &models.Slot{
			ID: "slot-1", ConsultantID: "consultant-1",
			StartTime: time.Now().Add(time.Hour), EndTime: time.Now().Add(2 * time.Hour),
			Status: models.SlotAvailable,
		}
	}

	t.Run("Soft Deletes Available Slot", func(t *testing.T) {
		store := newFakeSlotStore(availableSlot())
		uc := newTestSlotUsecase(store)

		err := uc.DeleteSlot(ctx, consultant, "slot-1")

		require.NoError(t, err)
		assert.Equal(t, models.SlotCancelled, store.slots["slot-1"].Status)
	})

	t.Run("Rejects Booked Slot", func(t *testing.T) {
		slot := availableSlot()
		slot.Status = models.SlotBooked
		uc := newTestSlotUsecase(newFakeSlotStore(slot))

		err := uc.DeleteSlot(ctx, consultant, "slot-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Rejects Foreign Consultant", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotStore(availableSlot()))
		other := &models.Session{AccountID: "consultant-2", Role: "consultant"}

		err := uc.DeleteSlot(ctx, other, "slot-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Admin May Delete", func(t *testing.T) {
		store := newFakeSlotStore(availableSlot())
		uc := newTestSlotUsecase(store)
		admin := &models.Session{AccountID: "admin-1", Role: "admin"}

		err := uc.DeleteSlot(ctx, admin, "slot-1")

		require.NoError(t, err)
	})

	t.Run("Unknown Slot Gets 404", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotStore())

		err := uc.DeleteSlot(ctx, consultant, "missing")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
