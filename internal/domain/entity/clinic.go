package entity

import (
	"fmt"
	"time"
)

// DateTimeLayout is the timestamp format used by every CSV file and the database loader.
const DateTimeLayout = "2006-01-02 15:04:05"

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// DefaultClockTime is used when a clinic's hours cannot be parsed.
var DefaultClockTime = ClockTime{Hour: 9}

// On anchors the clock time to the calendar date of day.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, c.Second, 0, day.Location())
}

// SinceMidnight returns the offset of the clock time from 00:00:00.
func (c ClockTime) SinceMidnight() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute + time.Duration(c.Second)*time.Second
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.SinceMidnight() < other.SinceMidnight()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Clinic is an existing clinic read from clinics.csv. ID is its 1-based row position,
// which matches the serial id the database assigns when the file is loaded in order.
type Clinic struct {
	ID              int       `gorm:"column:clinic_id;primaryKey;autoIncrement"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Address         string    `gorm:"type:text"`
	TelephoneNumber string    `gorm:"type:varchar(20)"`
	Type            string    `gorm:"type:varchar(50)"`
	OpeningHours    ClockTime `gorm:"-"`
	ClosingHours    ClockTime `gorm:"-"`
}

func (Clinic) TableName() string {
	return "clinic"
}

// HasValidHours reports whether the clinic opens before it closes.
func (c *Clinic) HasValidHours() bool {
	return c.OpeningHours.Before(c.ClosingHours)
}
