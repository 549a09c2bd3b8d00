package models

import "time"

const (
	BillStatusUnpaid  = "UNPAID"
	BillStatusPartial = "PARTIAL"
	BillStatusPaid    = "PAID"
)

type Bill struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	PatientID string `gorm:"size:50;index" json:"patient_id"`
	BillDate  string `gorm:"size:10" json:"bill_date"`

	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	Status      string  `gorm:"size:20;default:'UNPAID'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BillItem struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	BillID string `gorm:"size:50;index" json:"bill_id"`

	Description string  `gorm:"size:255" json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
