package repository

import (
	"context"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

type QueueTicketRepository interface {
	CopyFrom(ctx context.Context, db *gorm.DB, tickets []entity.QueueTicket) (int64, error)
	Count(db *gorm.DB) (int64, error)
	// LatestCheckInDay returns the date of the most recent check-in, or false when
	// there are no tickets.
	LatestCheckInDay(db *gorm.DB) (time.Time, bool, error)
	MaxQueueNumbersByDoctor(db *gorm.DB, day time.Time) ([]entity.DoctorQueueCounter, error)
}
