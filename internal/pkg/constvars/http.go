package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusBadRequest         = 400
	StatusUnauthorized       = 401
	StatusPaymentRequired    = 402
	StatusForbidden          = 403
	StatusNotFound           = 404
	StatusMethodNotAllowed   = 405
	StatusRequestTimeout     = 408
	StatusConflict           = 409
	StatusGone               = 410
	StatusPreconditionFailed = 412
	StatusUnprocessable      = 422
	StatusTooEarly           = 425
	StatusTooManyRequests    = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"
	HeaderXRequestID     = "X-Request-Id"
	HeaderXCallbackToken = "X-Callback-Token"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderContentLength  = "Content-Length"
	HeaderCacheControl   = "Cache-Control"
	HeaderLocation       = "Location"
	HeaderRetryAfter     = "Retry-After"
)
