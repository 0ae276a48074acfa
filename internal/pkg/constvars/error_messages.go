package constvars

// Client messages are safe to surface to the caller; Dev messages stay in logs
// (and in non-production response bodies).
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientMissingAppointmentDetails     = "Missing appointment details"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientMissingDoctorDetails          = "Missing doctor details"
	ErrClientInvalidClinicCoordinates      = "Invalid clinic coordinates"
	ErrClientDoctorNotFound                = "Doctor not found"
)

const (
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevUserNotExists        = "user not exists in our system"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthAdminOnly             = "endpoint requires admin role"
	ErrDevAuthCallerIdentityMissing = "caller identity not found in request context"
	ErrDevAuthLoginThrottled        = "login attempts exceeded the fixed window quota"

	ErrDevMissingRequestID = "request id not found in request context"

	ErrDevAppointmentNotFound      = "appointment not found or owned by another user"
	ErrDevDoctorNotFound           = "doctor not found"
	ErrDevDoctorInvalidCoordinates = "clinic latitude/longitude is not a finite number"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "string cannot be converted to mongo ObjectID"

	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data into redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisIncrementData = "failed to increment value on redis"
)
