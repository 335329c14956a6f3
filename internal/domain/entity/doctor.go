package entity

import "time"

// DefaultSlotMinutes applies to doctors without a configured appointment duration.
const DefaultSlotMinutes = 15

// Doctor belongs to exactly one clinic and sees patients in fixed-length slots.
type Doctor struct {
	ID                           string `gorm:"column:doctor_id;type:char(10);primaryKey"`
	Name                         string `gorm:"type:varchar(255);not null"`
	ClinicID                     int    `gorm:"not null;index"`
	AppointmentDurationInMinutes int    `gorm:"not null"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// SlotDuration returns the length of one appointment slot for this doctor.
func (d *Doctor) SlotDuration() time.Duration {
	minutes := d.AppointmentDurationInMinutes
	if minutes <= 0 {
		minutes = DefaultSlotMinutes
	}
	return time.Duration(minutes) * time.Minute
}
