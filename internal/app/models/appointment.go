package models

import (
	"medibook-service/internal/pkg/constvars"
	"time"
)

// Appointment keeps a denormalized snapshot of the doctor at booking time, so
// later catalog edits never change past bookings. Date and Time are stored as
// the display strings the booking form submits ("2026-03-01", "10:00 AM").
type Appointment struct {
	ID              string  `bson:"_id,omitempty"`
	OwnerID         string  `bson:"ownerId"`
	DoctorID        string  `bson:"doctorId,omitempty"`
	DoctorName      string  `bson:"doctorName"`
	Specialization  string  `bson:"specialization"`
	Clinic          string  `bson:"clinic"`
	Date            string  `bson:"date"`
	Time            string  `bson:"time"`
	ConsultationFee float64 `bson:"consultationFee"`
	Reason          string  `bson:"reason"`
	Status          string  `bson:"status"`
	BookedAt        string  `bson:"bookedAt"`
	TimeModel       `bson:",inline"`
}

// ClassifyStatus derives the display status at read time. A stored status is
// only ever Confirmed or Cancelled; Completed exists purely as this projection
// of a confirmed appointment whose date has passed. It is never persisted.
func ClassifyStatus(appointment *Appointment, now time.Time) string {
	if appointment.Status == constvars.AppointmentStatusCancelled {
		return constvars.AppointmentStatusCancelled
	}
	date, err := time.Parse(constvars.DateLayoutISO, appointment.Date)
	if err != nil {
		return appointment.Status
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return constvars.AppointmentStatusCompleted
	}
	return constvars.AppointmentStatusConfirmed
}
