package models

import "time"

type Bed struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	DepartmentID string `gorm:"size:50;index" json:"department_id"`

	// PatientID is empty while the bed is free.
	PatientID  string  `gorm:"size:50;index" json:"patient_id"`
	IsOccupied bool    `json:"is_occupied"`
	DailyRate  float64 `json:"daily_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
