package generator

import (
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

const (
	minDoctorsPerClinic = 2
	maxDoctorsPerClinic = 5
)

// Most doctors book 15-minute slots.
var slotDurations = []weighted[int]{
	{value: 15, weight: 0.7},
	{value: 20, weight: 0.2},
	{value: 30, weight: 0.1},
}

// GenerateDoctors creates two to five doctors for every clinic with ids D000000001, D000000002, ...
func GenerateDoctors(src Source, numClinics int) []entity.Doctor {
	var doctors []entity.Doctor
	counter := 1

	for clinicID := 1; clinicID <= numClinics; clinicID++ {
		count := src.IntRange(minDoctorsPerClinic, maxDoctorsPerClinic)
		for i := 0; i < count; i++ {
			name := "Dr. " + randomName(src)
			doctors = append(doctors, entity.Doctor{
				ID:                           sequenceID("D", counter),
				Name:                         name,
				ClinicID:                     clinicID,
				AppointmentDurationInMinutes: pickWeighted(src.Float64(), slotDurations),
			})
			counter++
		}
	}

	return doctors
}
