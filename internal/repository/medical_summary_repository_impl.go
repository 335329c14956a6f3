package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalSummaryRepository struct{}

func NewMedicalSummaryRepository() domainRepo.MedicalSummaryRepository {
	return &medicalSummaryRepository{}
}

func (r *medicalSummaryRepository) CopyFrom(ctx context.Context, db *gorm.DB, summaries []entity.MedicalSummary) (int64, error) {
	rows := make([][]any, len(summaries))
	for i, s := range summaries {
		rows[i] = []any{s.ID, s.AppointmentID, s.TreatmentSummary}
	}
	return copyRows(ctx, db, entity.MedicalSummary{}.TableName(), converter.MedicalSummaryHeader, rows)
}

func (r *medicalSummaryRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.MedicalSummary{})
}
