package models

import "time"

type Department struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Location    string `gorm:"size:100" json:"location"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
