package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CALLER_IDENTITY_KEY      ContextKey = "caller_identity"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusCancelled = "Cancelled"
	AppointmentStatusCompleted = "Completed"
)

const (
	DateLayoutISO = "2006-01-02"
)

const (
	RedisKeyDoctorCatalog        = "doctors:catalog"
	RedisKeyLoginAttemptsFormat  = "LOGIN_ATTEMPTS:%s:%d"
	DefaultLoginAttemptWindowSec = 60
)
