package responses

import "time"

type Report struct {
	ID              string    `json:"id"`
	AppointmentID   string    `json:"appointment_id"`
	ConsultantID    string    `json:"consultant_id"`
	NameOfPatient   string    `json:"name_of_patient"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender"`
	Condition       string    `json:"condition"`
	Notes           string    `json:"notes,omitempty"`
	Recommendations string    `json:"recommendations,omitempty"`
	Status          string    `json:"status,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}
