package slots

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

type slotUsecase struct {
	SlotRepository contracts.SlotRepository
	Log            *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(slotRepository contracts.SlotRepository, logger *zap.Logger) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotRepository: slotRepository,
			Log:            logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) ListSlots(ctx context.Context, filter *requests.SlotFilter, pagination *requests.Pagination) ([]responses.Slot, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, filter.ConsultantID),
	)

	slots, total, err := uc.SlotRepository.FindWithFilter(ctx, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.Log.Error("slotUsecase.ListSlots error finding slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.Slot, 0, len(slots))
	for _, slot := range slots {
		response = append(response, buildSlotResponse(&slot))
	}

	uc.Log.Info("slotUsecase.ListSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, total, nil
}

func (uc *slotUsecase) CreateSlots(ctx context.Context, session *models.Session, request *requests.CreateSlots) ([]responses.Slot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.CreateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, session.AccountID),
		zap.Int("window_count", len(request.Windows)),
	)

	slots := make([]models.Slot, 0, len(request.Windows))
	for _, window := range request.Windows {
		start, err := time.Parse(time.RFC3339, window.StartTime)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		end, err := time.Parse(time.RFC3339, window.EndTime)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		if !end.After(start) {
			return nil, exceptions.ErrInputValidation(fmt.Errorf("end_time must be after start_time"))
		}

		existing, err := uc.SlotRepository.FindOverlapping(ctx, session.AccountID, start, end)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, exceptions.ErrSlotOverlaps(fmt.Errorf("window %s overlaps %d slot(s)", window.StartTime, len(existing)))
		}

		// The requested windows must not overlap each other either.
		for _, accepted := range slots {
			if accepted.Overlaps(start, end) {
				return nil, exceptions.ErrSlotOverlaps(fmt.Errorf("requested windows overlap each other"))
			}
		}

		slots = append(slots, models.Slot{
			ConsultantID: session.AccountID,
			StartTime:    start,
			EndTime:      end,
			Status:       models.SlotAvailable,
		})
	}

	created, err := uc.SlotRepository.CreateSlots(ctx, slots)
	if err != nil {
		uc.Log.Error("slotUsecase.CreateSlots error inserting slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Slot, 0, len(created))
	for _, slot := range created {
		response = append(response, buildSlotResponse(&slot))
	}

	uc.Log.Info("slotUsecase.CreateSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *slotUsecase) DeleteSlot(ctx context.Context, session *models.Session, slotID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	slot, err := uc.SlotRepository.FindByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return exceptions.ErrSlotNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && slot.ConsultantID != session.AccountID {
		return exceptions.ErrRoleNotAllowed(fmt.Errorf("slot %s belongs to another consultant", slotID))
	}

	// Guarded on status available, so a slot that got booked between the
	// read and the write stays untouched.
	deleted, err := uc.SlotRepository.SoftDeleteByID(ctx, slotID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrSlotNotDeletable(fmt.Errorf("slot %s is not available", slotID))
	}

	uc.Log.Info("slotUsecase.DeleteSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}

func buildSlotResponse(slot *models.Slot) responses.Slot {
	return responses.Slot{
		ID:           slot.ID,
		ConsultantID: slot.ConsultantID,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Status:       string(slot.Status),
	}
}
