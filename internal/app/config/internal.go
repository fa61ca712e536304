package config

type InternalConfig struct {
	App            App
	JWT            AppJWT
	Booking        AppBooking
	PaymentGateway AppPaymentGateway
	Queue          AppQueue
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

// AppBooking holds the booking-policy knobs for the slot and appointment
// lifecycle.
type AppBooking struct {
	// SlotLockTTLInSeconds bounds how long the per-slot booking lock is
	// held while the conditional update runs.
	SlotLockTTLInSeconds int

	// CancelAppointmentOnPaymentFailure auto-cancels a pending
	// appointment when its payment fails. Off by default: the source
	// systems leave the appointment pending for a retry.
	CancelAppointmentOnPaymentFailure bool
}

type AppPaymentGateway struct {
	BaseUrl                 string
	ApiKey                  string
	CallbackToken           string
	RequestTimeoutInSeconds int
	RequestsPerSecond       int
}

type AppQueue struct {
	// ThrottleRetry is the failedCount threshold before a callback
	// message is parked on the DLQ.
	ThrottleRetry int
}
