package models

import "time"

type Patient struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Gender  string `gorm:"size:10" json:"gender"`
	Address string `gorm:"size:255" json:"address"`

	DateOfBirth      string `gorm:"size:10" json:"date_of_birth"`
	RegistrationDate string `gorm:"size:10" json:"registration_date"`
	Notes            string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
