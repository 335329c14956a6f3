package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "Upcoming"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusMissed    AppointmentStatus = "Missed"
)

// Appointment occupies one slot of a doctor's AVAILABLE block.
type Appointment struct {
	ID            string            `gorm:"column:appointment_id;type:char(10);primaryKey"`
	PatientID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	DoctorID      string            `gorm:"type:char(10);not null;index"`
	StartDatetime time.Time         `gorm:"not null"`
	EndDatetime   time.Time         `gorm:"not null"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// IsUpcoming checks if appointment is still to happen
func (a *Appointment) IsUpcoming() bool {
	return a.Status == AppointmentStatusUpcoming
}

// IsCompleted checks if appointment took place
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsOn reports whether the appointment starts on the same calendar date as day.
func (a *Appointment) IsOn(day time.Time) bool {
	y1, m1, d1 := a.StartDatetime.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MarkMissed changes appointment status to missed
func (a *Appointment) MarkMissed() {
	a.Status = AppointmentStatusMissed
}
