package requests

// CreateAppointment carries the finalized booking form. Only presence is
// validated server-side; date/time format, fee positivity and reason length
// are best-effort hints on the client and deliberately not re-checked here.
// Any owner-like field in the raw body is ignored: ownership always comes
// from the authenticated caller.
type CreateAppointment struct {
	DoctorID        string  `json:"doctorId"`
	DoctorName      string  `json:"doctorName" validate:"required"`
	Specialization  string  `json:"specialization" validate:"required"`
	Clinic          string  `json:"clinic" validate:"required"`
	Date            string  `json:"date" validate:"required"`
	Time            string  `json:"time" validate:"required"`
	ConsultationFee float64 `json:"consultationFee" validate:"required"`
	Reason          string  `json:"reason" validate:"required"`
}
