package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalSummaryRepository interface {
	CopyFrom(ctx context.Context, db *gorm.DB, summaries []entity.MedicalSummary) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
