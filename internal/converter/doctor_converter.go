package converter

import (
	"strconv"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// DoctorToRecord converts a Doctor entity to a doctor.csv row
func DoctorToRecord(doctor *entity.Doctor) []string {
	return []string{
		doctor.ID,
		doctor.Name,
		strconv.Itoa(doctor.ClinicID),
		strconv.Itoa(doctor.AppointmentDurationInMinutes),
	}
}

// DoctorsToRecords converts a slice of Doctor entities to doctor.csv rows
func DoctorsToRecords(doctors []entity.Doctor) [][]string {
	records := make([][]string, len(doctors))
	for i := range doctors {
		records[i] = DoctorToRecord(&doctors[i])
	}
	return records
}

func RecordToDoctor(record map[string]string) (*entity.Doctor, error) {
	var (
		doctor entity.Doctor
		err    error
	)
	if doctor.ID, err = field(record, ColumnDoctorID); err != nil {
		return nil, err
	}
	if doctor.Name, err = field(record, ColumnName); err != nil {
		return nil, err
	}
	if doctor.ClinicID, err = intField(record, ColumnClinicID); err != nil {
		return nil, err
	}
	if doctor.AppointmentDurationInMinutes, err = intField(record, ColumnAppointmentDurationInMinutes); err != nil {
		return nil, err
	}
	return &doctor, nil
}
