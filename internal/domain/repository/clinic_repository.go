package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	CopyFrom(ctx context.Context, db *gorm.DB, clinics []entity.Clinic) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
