package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingSlotIDKey        = "slot_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingPaymentIDKey     = "payment_id"
	LoggingReportIDKey      = "report_id"
	LoggingAccountIDKey     = "account_id"
	LoggingConsultantIDKey  = "consultant_id"

	LoggingRedisKey                  = "redis_key"
	LoggingLockValueKey              = "lock_value"
	LoggingLockStoredValueKey        = "lock_stored_value"
	LoggingLockExpectedValueKey      = "lock_expected_value"
	LoggingLockExpirationTimeKey     = "lock_expiration_time"
	LoggingPaymentStatusKey          = "payment_status"
	LoggingPaymentLinkIDKey          = "payment_link_id"
	LoggingQueueMessageIDKey         = "queue_message_id"
	LoggingQueueMessageFailedCntKey  = "queue_message_failed_count"
	LoggingAppointmentStatusKey      = "appointment_status"
	LoggingAppointmentOldStatusKey   = "appointment_old_status"
	LoggingAppointmentNewStatusKey   = "appointment_new_status"
	LoggingSlotStatusKey             = "slot_status"
	LoggingPaymentCallbackOutcomeKey = "payment_callback_outcome"
)
