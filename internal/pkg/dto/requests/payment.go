package requests

type CreatePayment struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=bank_transfer ewallet credit_card"`
	Description   string `json:"description" validate:"max=500"`
}

// PaymentCallback is the payload the payment provider posts back when a
// transaction settles or expires. An expired link is recorded as a
// failed payment.
type PaymentCallback struct {
	PaymentLinkID string `json:"payment_link_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=completed failed expired"`
}

// PaymentCallbackMessage is the queue envelope carrying a provider
// callback from the HTTP boundary to the worker.
type PaymentCallbackMessage struct {
	MessageID     string `json:"message_id"`
	PaymentLinkID string `json:"payment_link_id"`
	Status        string `json:"status"`
	FailedCount   int    `json:"failed_count"`
}

// GatewayPaymentLink is the outbound request to the payment provider.
type GatewayPaymentLink struct {
	ExternalID  string  `json:"external_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Method      string  `json:"method"`
	Description string  `json:"description,omitempty"`
}
