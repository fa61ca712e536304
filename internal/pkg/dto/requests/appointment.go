package requests

type CreateAppointment struct {
	SlotID    string `json:"slot_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Reason    string `json:"reason" validate:"max=1000"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
	Note   string `json:"note" validate:"max=1000"`
}

type RescheduleAppointment struct {
	NewSlotID string `json:"new_slot_id" validate:"required"`
	Reason    string `json:"reason" validate:"max=1000"`
}

type AttachMeetLink struct {
	MeetLink string `json:"meet_link" validate:"required,url"`
}
