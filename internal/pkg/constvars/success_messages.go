package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	UserCreatedSuccess = "user created successfully"
	LoginSuccess       = "successfully login"

	// Doctor-related messages
	GetDoctorsSuccess    = "get doctors successfully"
	DoctorCreatedSuccess = "doctor created successfully"
	DoctorDeletedSuccess = "Doctor deleted"

	// Specialization-related messages
	GetSpecializationsSuccess = "get specializations successfully"

	// Appointment-related messages
	GetAppointmentsSuccess      = "get appointments successfully"
	AppointmentCreatedSuccess   = "appointment created successfully"
	AppointmentCancelledSuccess = "Appointment cancelled"
)
