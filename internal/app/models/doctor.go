package models

type Doctor struct {
	ID               string  `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string  `bson:"name" json:"name"`
	SpecializationID int     `bson:"specializationId" json:"specializationId"`
	Specialization   string  `bson:"specialization" json:"specialization"`
	Qualifications   string  `bson:"qualifications" json:"qualifications"`
	Experience       string  `bson:"experience" json:"experience"`
	ConsultationFee  float64 `bson:"consultationFee" json:"consultationFee"`
	Duration         int     `bson:"duration" json:"duration"`
	Image            string  `bson:"image" json:"image"`
	Clinic           string  `bson:"clinic" json:"clinic"`
	ClinicAddress    string  `bson:"clinicAddress" json:"clinicAddress"`
	ClinicLat        float64 `bson:"clinicLat" json:"clinicLat"`
	ClinicLng        float64 `bson:"clinicLng" json:"clinicLng"`
	Available        bool    `bson:"available" json:"available"`
	TimeModel        `bson:",inline"`
}

const DoctorDefaultImage = "👨‍⚕️"
