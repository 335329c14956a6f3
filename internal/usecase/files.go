package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/csvfile"
)

// Dataset file names shared by the generator and the seeder.
const (
	ClinicsFile        = "clinics.csv"
	UserProfileFile    = "user_profile.csv"
	DoctorFile         = "doctor.csv"
	ScheduleFile       = "schedule.csv"
	AppointmentFile    = "appointment.csv"
	MedicalSummaryFile = "medical_summary.csv"
	QueueTicketFile    = "queue_ticket.csv"
)

// readDataset parses every row of dir/file with parse. Row numbers in errors count the header.
func readDataset[T any](dir, file string, parse func(map[string]string) (*T, error)) ([]T, error) {
	records, err := csvfile.ReadRecords(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(records))
	for i, record := range records {
		item, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", file, i+2, err)
		}
		items = append(items, *item)
	}
	return items, nil
}
