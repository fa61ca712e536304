package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending     AppointmentStatus = "pending"
	AppointmentConfirmed   AppointmentStatus = "confirmed"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

// appointmentTransitions is the closed set of legal status moves. A
// rescheduled, completed, or cancelled appointment is terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled},
}

func IsValidAppointmentTransition(from, to AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsAppointmentStatus(value string) bool {
	switch AppointmentStatus(value) {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted,
		AppointmentCancelled, AppointmentRescheduled:
		return true
	}
	return false
}

type Appointment struct {
	ID           string            `bson:"_id,omitempty"`
	SlotID       string            `bson:"slotId"`
	CustomerID   string            `bson:"customerId"`
	ConsultantID string            `bson:"consultantId"`
	ServiceID    string            `bson:"serviceId"`
	DateBooking  time.Time         `bson:"dateBooking"`
	Reason       string            `bson:"reason,omitempty"`
	Note         string            `bson:"note,omitempty"`
	Status       AppointmentStatus `bson:"status"`
	MeetLink     string            `bson:"meetLink,omitempty"`

	// RescheduledTo holds the id of the replacement appointment once this
	// one reaches the rescheduled state.
	RescheduledTo string `bson:"rescheduledTo,omitempty"`

	// Version guards against duplicate submits racing on the same
	// transition. Every status change increments it.
	Version int64 `bson:"version"`

	TimeModel `bson:",inline"`
}
