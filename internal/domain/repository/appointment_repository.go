package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	CopyFrom(ctx context.Context, db *gorm.DB, appointments []entity.Appointment) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
