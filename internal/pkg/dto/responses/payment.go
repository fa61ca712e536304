package responses

import "time"

type Payment struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	TotalPrice    float64   `json:"total_price"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	PaymentLink   string    `json:"payment_link,omitempty"`
	Date          time.Time `json:"date"`
}

// GatewayPaymentLink is the provider's answer to a payment-link request.
type GatewayPaymentLink struct {
	PaymentLinkID string `json:"payment_link_id"`
	PaymentLink   string `json:"payment_link"`
	Status        string `json:"status"`
}
