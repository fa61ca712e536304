package constvars

const (
	URLParamSlotID        = "slot_id"
	URLParamAppointmentID = "appointment_id"
	URLParamConsultantID  = "consultant_id"
)

const (
	URLQueryParamPage         = "page"
	URLQueryParamPageSize     = "page_size"
	URLQueryParamConsultantID = "consultant_id"
	URLQueryParamStatus       = "status"
	URLQueryParamFrom         = "from"
	URLQueryParamTo           = "to"
)
