package entity

import "time"

// ScheduleType labels a schedule block.
type ScheduleType string

const (
	ScheduleTypeAvailable   ScheduleType = "AVAILABLE"
	ScheduleTypeUnavailable ScheduleType = "UNAVAILABLE"
)

// Schedule is a contiguous block of one doctor's day.
type Schedule struct {
	ID            string       `gorm:"column:schedule_id;type:char(10);primaryKey"`
	DoctorID      string       `gorm:"type:char(10);not null;index"`
	StartDatetime time.Time    `gorm:"not null"`
	EndDatetime   time.Time    `gorm:"not null"`
	Type          ScheduleType `gorm:"type:varchar(11);not null"`
}

func (Schedule) TableName() string {
	return "schedule"
}

// IsAvailable checks if patients can be booked into the block
func (s *Schedule) IsAvailable() bool {
	return s.Type == ScheduleTypeAvailable
}

func (s *Schedule) Duration() time.Duration {
	return s.EndDatetime.Sub(s.StartDatetime)
}

// Contains reports whether [start, end] lies entirely inside the block.
func (s *Schedule) Contains(start, end time.Time) bool {
	return !start.Before(s.StartDatetime) && !end.After(s.EndDatetime) && !end.Before(start)
}

// SlotCount returns how many whole slots of the given length fit in the block.
func (s *Schedule) SlotCount(slot time.Duration) int {
	if slot <= 0 {
		return 0
	}
	return int(s.Duration() / slot)
}
