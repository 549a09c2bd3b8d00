package dto

import "github.com/v322/healthsync/internal/models"

// AppointmentDetailDTO is the appointment plus the resolved participant
// names, assembled with explicit id lookups.
type AppointmentDetailDTO struct {
	models.Appointment

	PatientName string `json:"patient_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
}
