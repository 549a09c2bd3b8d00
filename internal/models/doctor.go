package models

import "time"

type Doctor struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Specialization  string  `gorm:"size:100" json:"specialization"`
	Qualification   string  `gorm:"size:100" json:"qualification"`
	ConsultationFee float64 `json:"consultation_fee"`

	DepartmentID string `gorm:"size:50;index" json:"department_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
