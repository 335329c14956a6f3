package converter

import (
	"fmt"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToRecord converts an Appointment entity to an appointment.csv row
func AppointmentToRecord(appointment *entity.Appointment) []string {
	return []string{
		appointment.ID,
		appointment.PatientID.String(),
		appointment.DoctorID,
		FormatDateTime(appointment.StartDatetime),
		FormatDateTime(appointment.EndDatetime),
		string(appointment.Status),
	}
}

// AppointmentsToRecords converts a slice of Appointment entities to appointment.csv rows
func AppointmentsToRecords(appointments []entity.Appointment) [][]string {
	records := make([][]string, len(appointments))
	for i := range appointments {
		records[i] = AppointmentToRecord(&appointments[i])
	}
	return records
}

func RecordToAppointment(record map[string]string) (*entity.Appointment, error) {
	var (
		appointment entity.Appointment
		err         error
	)
	if appointment.ID, err = field(record, ColumnAppointmentID); err != nil {
		return nil, err
	}
	rawPatient, err := field(record, ColumnPatientID)
	if err != nil {
		return nil, err
	}
	if appointment.PatientID, err = uuid.Parse(rawPatient); err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, ColumnPatientID, rawPatient)
	}
	if appointment.DoctorID, err = field(record, ColumnDoctorID); err != nil {
		return nil, err
	}
	if appointment.StartDatetime, err = dateTimeField(record, ColumnStartDatetime); err != nil {
		return nil, err
	}
	if appointment.EndDatetime, err = dateTimeField(record, ColumnEndDatetime); err != nil {
		return nil, err
	}
	status, err := field(record, ColumnStatus)
	if err != nil {
		return nil, err
	}
	appointment.Status = entity.AppointmentStatus(status)
	return &appointment, nil
}
