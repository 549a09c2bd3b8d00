package models

import "time"

const (
	PrescriptionStatusPending   = "PENDING"
	PrescriptionStatusDispensed = "DISPENSED"
	PrescriptionStatusCancelled = "CANCELLED"
	PrescriptionStatusExpired   = "EXPIRED"
)

type Prescription struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	PatientID string `gorm:"size:50;index" json:"patient_id"`
	DoctorID  string `gorm:"size:50;index" json:"doctor_id"`

	DateIssued string `gorm:"size:10" json:"date_issued"`
	Status     string `gorm:"size:20;default:'PENDING'" json:"status"`

	Instructions string `gorm:"type:text" json:"instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PrescriptionItem struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	PrescriptionID string `gorm:"size:50;index" json:"prescription_id"`
	MedicationID   string `gorm:"size:50;index" json:"medication_id"`

	Quantity int `json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
