package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualifications = strings.TrimSpace(input.Qualifications)
	input.Experience = strings.TrimSpace(input.Experience)
	input.Clinic = strings.TrimSpace(input.Clinic)
	input.ClinicAddress = strings.TrimSpace(input.ClinicAddress)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Clinic = strings.TrimSpace(input.Clinic)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Reason = strings.TrimSpace(input.Reason)
}
