package responses

import "time"

type Appointment struct {
	ID            string    `json:"id"`
	SlotID        string    `json:"slot_id"`
	CustomerID    string    `json:"customer_id"`
	ConsultantID  string    `json:"consultant_id"`
	ServiceID     string    `json:"service_id"`
	DateBooking   time.Time `json:"date_booking"`
	Reason        string    `json:"reason,omitempty"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
	MeetLink      string    `json:"meet_link,omitempty"`
	RescheduledTo string    `json:"rescheduled_to,omitempty"`
	StartTime     time.Time `json:"start_time,omitempty"`
	EndTime       time.Time `json:"end_time,omitempty"`
}
