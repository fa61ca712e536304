package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CNSL_SVC_"
)

const (
	RoleCustomer   = "customer"
	RoleConsultant = "consultant"
	RoleAdmin      = "admin"
)

const (
	MongoCollectionAccounts     = "accounts"
	MongoCollectionServices     = "services"
	MongoCollectionSlots        = "slots"
	MongoCollectionAppointments = "appointments"
	MongoCollectionPayments     = "payments"
	MongoCollectionReports      = "reports"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	// ReportEditWindowLeadMinutes is how early (before slot start) a report
	// becomes editable.
	ReportEditWindowLeadMinutes = 10

	// MeetLinkWindowLeadHours is how early (before slot start) a meet link
	// may be attached to a confirmed appointment.
	MeetLinkWindowLeadHours = 24
)

const (
	SlotBookingLockKeyPrefix     = "booking:lock:slot:"
	PaymentWorkerLockKey         = "payment:worker:lock"
	SessionKeyPrefix             = "session:"
	PaymentCallbackQueueName     = "payment_callback_queue"
	PaymentCallbackDLQName       = "payment_callback_dlq"
	PaymentCallbackMaxFailedTrys = 3
)
