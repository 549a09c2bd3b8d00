package models

import "time"

// AvailabilityWindow is one recurring weekly interval during which a doctor
// accepts appointments. DayOfWeek is the uppercase English day name
// ("MONDAY".."SUNDAY"); StartTime/EndTime are "15:04" clock values with
// StartTime < EndTime. A doctor may have several windows on the same day and
// they are not required to be disjoint.
type AvailabilityWindow struct {
	ID string `gorm:"primaryKey;size:50" json:"id"`

	DoctorID  string `gorm:"size:50;index:idx_availability_doctor_day" json:"doctor_id"`
	DayOfWeek string `gorm:"size:10;index:idx_availability_doctor_day" json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
