package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type queueTicketRepository struct{}

func NewQueueTicketRepository() domainRepo.QueueTicketRepository {
	return &queueTicketRepository{}
}

func (r *queueTicketRepository) CopyFrom(ctx context.Context, db *gorm.DB, tickets []entity.QueueTicket) (int64, error) {
	rows := make([][]any, len(tickets))
	for i, t := range tickets {
		rows[i] = []any{t.AppointmentID, string(t.Status), t.CheckInTime, t.QueueNumber, t.IsFastTracked}
	}
	return copyRows(ctx, db, entity.QueueTicket{}.TableName(), converter.QueueTicketHeader, rows)
}

func (r *queueTicketRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.QueueTicket{})
}

func (r *queueTicketRepository) LatestCheckInDay(db *gorm.DB) (time.Time, bool, error) {
	var latest sql.NullTime
	err := db.Model(&entity.QueueTicket{}).Select("MAX(check_in_time)").Row().Scan(&latest)
	if err != nil {
		return time.Time{}, false, err
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}
	y, m, d := latest.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true, nil
}

// MaxQueueNumbersByDoctor returns the highest queue number per doctor among tickets
// checked in on day, the same lookup the booking API uses to hand out the next number.
func (r *queueTicketRepository) MaxQueueNumbersByDoctor(db *gorm.DB, day time.Time) ([]entity.DoctorQueueCounter, error) {
	var counters []entity.DoctorQueueCounter
	err := db.Table("queue_ticket AS qt").
		Select("a.doctor_id, MAX(qt.queue_number) AS max_queue_number, COUNT(*) AS tickets").
		Joins("JOIN appointment a ON a.appointment_id = qt.appointment_id").
		Where("DATE(qt.check_in_time) = ? AND qt.queue_number > 0", day.Format("2006-01-02")).
		Group("a.doctor_id").
		Order("a.doctor_id").
		Scan(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}
