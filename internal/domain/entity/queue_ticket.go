package entity

import "time"

// QueueStatus represents where a checked-in patient is in the clinic queue
type QueueStatus string

const (
	QueueStatusCheckedIn      QueueStatus = "CHECKED_IN"
	QueueStatusCalled         QueueStatus = "CALLED"
	QueueStatusInConsultation QueueStatus = "IN_CONSULTATION"
	QueueStatusCompleted      QueueStatus = "COMPLETED"
)

// QueueTicket is issued when a patient checks in for one of today's appointments.
type QueueTicket struct {
	ID            int         `gorm:"column:ticket_id;primaryKey;autoIncrement"`
	AppointmentID string      `gorm:"type:char(10);not null;uniqueIndex"`
	Status        QueueStatus `gorm:"type:varchar(20);not null"`
	CheckInTime   time.Time   `gorm:"not null"`
	QueueNumber   int         `gorm:"not null"`
	IsFastTracked bool
}

func (QueueTicket) TableName() string {
	return "queue_ticket"
}

// DoctorQueueCounter is the highest queue number issued for a doctor on one day.
type DoctorQueueCounter struct {
	DoctorID       string
	MaxQueueNumber int
	Tickets        int
}
