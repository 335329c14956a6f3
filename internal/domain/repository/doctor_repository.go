package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	CopyFrom(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
