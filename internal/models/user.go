package models

import "time"

const (
	RoleAdmin        = "ADMIN"
	RoleDoctor       = "DOCTOR"
	RolePatient      = "PATIENT"
	RoleReceptionist = "RECEPTIONIST"
)

type User struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'PATIENT'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
