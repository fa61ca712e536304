package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"url":      "must be a valid URL",
	"datetime": "must be a valid timestamp",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be one of customer, consultant, admin",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientUsernameAlreadyExists         = "Username is already taken"

	ErrClientSlotNotFound           = "Slot not found"
	ErrClientSlotUnavailable        = "This slot is no longer available"
	ErrClientSlotOverlaps           = "The requested window overlaps an existing slot"
	ErrClientSlotNotDeletable       = "Only available slots can be removed"
	ErrClientAppointmentNotFound    = "Appointment not found"
	ErrClientInvalidStateTransition = "The appointment is not in a state that allows this action"
	ErrClientServiceNotFound        = "Service not found"
	ErrClientPaymentNotFound        = "Payment not found"
	ErrClientPaymentAlreadyExists   = "A payment already exists for this appointment"
	ErrClientReportTooEarly         = "The report cannot be written yet, the session has not started"
	ErrClientReportWindowClosed     = "The session has ended, the report is read only"
	ErrClientReportNotFound         = "No report exists for this appointment"
	ErrClientMeetLinkWindowClosed   = "A meet link can only be set for a confirmed appointment close to its session time"
	ErrClientInvalidMeetLink        = "The meet link must be a valid http(s) URL"
	ErrClientInvalidCallbackToken   = "Invalid callback token"
)

// Developer-facing messages
const (
	ErrDevValidationFailed           = "request payload validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON payload"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON payload"
	ErrDevURLParamIDValidationFailed = "missing or malformed url param: %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "unhandled server error"
	ErrDevMissingRequestID           = "request id not found in context"
	ErrDevMissingSessionData         = "session data not found in context"

	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalid          = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected jwt signing method"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "credentials do not match any account"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevUsernameAlreadyExists     = "username already exists"
	ErrDevRoleNotAllowed            = "session role is not allowed for this route"

	ErrDevDBFailedToFindDocument    = "mongo: failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongo: failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongo: failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongo: failed to delete document"
	ErrDevDBFailedToIterateCursor   = "mongo: failed to iterate cursor"
	ErrDevDBStringNotObjectID       = "mongo: value is not a valid object id"
	ErrDevDBConditionalUpdateMissed = "mongo: conditional update matched no document"

	ErrDevRedisGetData   = "redis: failed to get data"
	ErrDevRedisSetData   = "redis: failed to set data"
	ErrDevRedisDelete    = "redis: failed to delete data"
	ErrDevRedisGetNoData = "redis: no data for key %s"
	ErrDevRedisUnlock    = "redis: failed to release lock"

	ErrDevQueuePublishMessage = "amqp: failed to publish message to %s"
	ErrDevQueueConsumeMessage = "amqp: failed to consume message from %s"

	ErrDevGatewayCreateRequest = "payment gateway: failed to build request"
	ErrDevGatewaySendRequest   = "payment gateway: failed to send request"
	ErrDevGatewayBadResponse   = "payment gateway: unexpected response status %d"

	ErrDevSlotUnavailable          = "slot is not available for booking"
	ErrDevSlotReleaseFailed        = "slot release conditional update missed"
	ErrDevAppointmentInvalidState  = "appointment transition rejected: unexpected current status"
	ErrDevReportOutsideEditWindow  = "report submitted outside edit window"
	ErrDevMeetLinkOutsideWindow    = "meet link attach outside allowed window"
	ErrDevPaymentDuplicate         = "payment already exists for appointment"
	ErrDevPaymentUnknownStatus     = "unhandled payment provider status"
	ErrDevCallbackTokenInvalid     = "callback token mismatch"
	ErrDevSlotWindowsOverlap       = "requested slot windows overlap existing slots"
	ErrDevAppointmentOwnerMismatch = "appointment does not belong to requester"
)
