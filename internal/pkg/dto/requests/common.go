package requests

import "time"

type Pagination struct {
	Page     int
	PageSize int
}

type SlotFilter struct {
	ConsultantID string
	Status       string
	From         *time.Time
	To           *time.Time
}

type AppointmentFilter struct {
	Status string
}
