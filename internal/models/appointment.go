package models

import "time"

// Appointment stores the calendar day and the clock times separately:
// Date is "2006-01-02", StartTime/EndTime are "15:04". The pair
// [StartTime, EndTime) is half-open.
type Appointment struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	PatientID string `gorm:"size:50;index" json:"patient_id"`
	DoctorID  string `gorm:"size:50;index:idx_appointments_doctor_date" json:"doctor_id"`

	Date      string `gorm:"size:10;index:idx_appointments_doctor_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`
	Type   string `gorm:"size:50" json:"type"`

	Notes         string `gorm:"type:text" json:"notes"`
	Diagnosis     string `gorm:"type:text" json:"diagnosis"`
	TreatmentPlan string `gorm:"type:text" json:"treatment_plan"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
