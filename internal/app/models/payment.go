package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func IsPaymentStatus(value string) bool {
	switch PaymentStatus(value) {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type Payment struct {
	ID            string        `bson:"_id,omitempty"`
	AppointmentID string        `bson:"appointmentId"`
	AccountID     string        `bson:"accountId"`
	TotalPrice    float64       `bson:"totalPrice"`
	Currency      string        `bson:"currency"`
	PaymentMethod string        `bson:"paymentMethod"`
	Status        PaymentStatus `bson:"status"`
	PaymentLinkID string        `bson:"paymentLinkId,omitempty"`
	PaymentLink   string        `bson:"paymentLink,omitempty"`
	Date          time.Time     `bson:"date"`
	Description   string        `bson:"description,omitempty"`

	TimeModel `bson:",inline"`
}
