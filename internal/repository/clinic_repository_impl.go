package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

// CopyFrom inserts clinics in order and lets the serial column assign their ids.
func (r *clinicRepository) CopyFrom(ctx context.Context, db *gorm.DB, clinics []entity.Clinic) (int64, error) {
	rows := make([][]any, len(clinics))
	for i, c := range clinics {
		rows[i] = []any{
			c.Name,
			nullableText(c.Address),
			nullableText(c.TelephoneNumber),
			nullableText(c.Type),
			timeOfDay(c.OpeningHours),
			timeOfDay(c.ClosingHours),
		}
	}
	return copyRows(ctx, db, entity.Clinic{}.TableName(), converter.ClinicHeader, rows)
}

func (r *clinicRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.Clinic{})
}
