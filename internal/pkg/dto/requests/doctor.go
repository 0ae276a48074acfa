package requests

type CreateDoctor struct {
	Name             string  `json:"name" validate:"required"`
	SpecializationID int     `json:"specializationId" validate:"required"`
	Specialization   string  `json:"specialization" validate:"required"`
	Qualifications   string  `json:"qualifications" validate:"required"`
	Experience       string  `json:"experience" validate:"required"`
	ConsultationFee  float64 `json:"consultationFee" validate:"required"`
	Duration         int     `json:"duration" validate:"required"`
	Image            string  `json:"image"`
	Clinic           string  `json:"clinic" validate:"required"`
	ClinicAddress    string  `json:"clinicAddress" validate:"required"`
	ClinicLat        float64 `json:"clinicLat"`
	ClinicLng        float64 `json:"clinicLng"`
	Available        *bool   `json:"available"`
}
