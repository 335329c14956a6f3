package usecase

import (
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"
)

type generateResult struct {
	dir     string
	summary *dto.GenerateSummary
}

func newTestGenerateRequest(dir string) *dto.GenerateRequest {
	return &dto.GenerateRequest{
		OutputDir:       dir,
		Today:           testToday,
		ScheduleEndDate: testToday.AddDate(0, 0, 4),
		HistoryDays:     3,
		NumPatients:     25,
		NumAppointments: 120,
		AttemptFactor:   3,
		Seed:            42,
	}
}
