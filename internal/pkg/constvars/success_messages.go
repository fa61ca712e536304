package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess = "account created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Slot messages
	GetSlotsSuccess    = "get slots successfully"
	CreateSlotsSuccess = "slots created successfully"
	DeleteSlotSuccess  = "slot removed successfully"

	// Appointment messages
	CreateAppointmentSuccess     = "appointment booked successfully"
	GetAppointmentsSuccess       = "get appointments successfully"
	UpdateAppointmentSuccess     = "appointment updated successfully"
	RescheduleAppointmentSuccess = "appointment rescheduled successfully"
	AttachMeetLinkSuccess        = "meet link attached successfully"

	// Report messages
	SubmitReportSuccess = "report saved successfully"
	GetReportSuccess    = "get report successfully"

	// Payment messages
	CreatePaymentSuccess   = "payment initiated successfully"
	PaymentCallbackSuccess = "callback accepted"

	// Service catalog messages
	GetServicesSuccess   = "get services successfully"
	CreateServiceSuccess = "service created successfully"
)
