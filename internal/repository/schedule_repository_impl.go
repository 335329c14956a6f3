package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) CopyFrom(ctx context.Context, db *gorm.DB, schedules []entity.Schedule) (int64, error) {
	rows := make([][]any, len(schedules))
	for i, s := range schedules {
		rows[i] = []any{s.ID, s.DoctorID, s.StartDatetime, s.EndDatetime, string(s.Type)}
	}
	return copyRows(ctx, db, entity.Schedule{}.TableName(), converter.ScheduleHeader, rows)
}

func (r *scheduleRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.Schedule{})
}
