package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) CopyFrom(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) (int64, error) {
	rows := make([][]any, len(doctors))
	for i, d := range doctors {
		rows[i] = []any{d.ID, d.Name, d.ClinicID, d.AppointmentDurationInMinutes}
	}
	return copyRows(ctx, db, entity.Doctor{}.TableName(), converter.DoctorHeader, rows)
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.Doctor{})
}
