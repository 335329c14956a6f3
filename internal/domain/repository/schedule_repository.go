package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	CopyFrom(ctx context.Context, db *gorm.DB, schedules []entity.Schedule) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
