package requests

type SlotWindow struct {
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type CreateSlots struct {
	Windows []SlotWindow `json:"windows" validate:"required,min=1,dive"`
}
