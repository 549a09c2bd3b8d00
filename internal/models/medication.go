package models

import "time"

type Medication struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	GenericName  string  `gorm:"size:100" json:"generic_name"`
	Manufacturer string  `gorm:"size:100" json:"manufacturer"`
	Description  string  `gorm:"size:255" json:"description"`
	UnitPrice    float64 `json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
