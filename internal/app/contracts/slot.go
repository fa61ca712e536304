package contracts

import (
	"context"
	"time"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	ListSlots(ctx context.Context, filter *requests.SlotFilter, pagination *requests.Pagination) ([]responses.Slot, int, error)
	CreateSlots(ctx context.Context, session *models.Session, request *requests.CreateSlots) ([]responses.Slot, error)
	DeleteSlot(ctx context.Context, session *models.Session, slotID string) error
}

type SlotRepository interface {
	CreateSlots(ctx context.Context, slots []models.Slot) ([]models.Slot, error)
	FindByID(ctx context.Context, slotID string) (*models.Slot, error)
	FindWithFilter(ctx context.Context, filter *requests.SlotFilter, page, pageSize int) ([]models.Slot, int, error)
	FindOverlapping(ctx context.Context, consultantID string, start, end time.Time) ([]models.Slot, error)

	// TransitionStatus flips the slot status only when the stored status
	// still equals expected. Returns false when the guard missed.
	TransitionStatus(ctx context.Context, slotID string, expected, next models.SlotStatus) (bool, error)

	SoftDeleteByID(ctx context.Context, slotID string) (bool, error)
}
