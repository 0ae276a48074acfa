package responses

import "time"

// Appointment mirrors the stored record plus DisplayStatus, the read-time
// projection that shows past confirmed bookings as Completed without ever
// persisting that state.
type Appointment struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	DoctorID        string    `json:"doctorId,omitempty"`
	DoctorName      string    `json:"doctorName"`
	Specialization  string    `json:"specialization"`
	Clinic          string    `json:"clinic"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	ConsultationFee float64   `json:"consultationFee"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	DisplayStatus   string    `json:"displayStatus"`
	BookedAt        string    `json:"bookedAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CancelAppointment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
