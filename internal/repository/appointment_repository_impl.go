package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) CopyFrom(ctx context.Context, db *gorm.DB, appointments []entity.Appointment) (int64, error) {
	rows := make([][]any, len(appointments))
	for i, a := range appointments {
		rows[i] = []any{
			a.ID,
			[16]byte(a.PatientID),
			a.DoctorID,
			a.StartDatetime,
			a.EndDatetime,
			string(a.Status),
		}
	}
	return copyRows(ctx, db, entity.Appointment{}.TableName(), converter.AppointmentHeader, rows)
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.Appointment{})
}
