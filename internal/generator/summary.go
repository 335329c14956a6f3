package generator

import "github.com/tanzhongyan/Singheatlh/internal/domain/entity"

// GenerateMedicalSummaries writes one treatment note for each completed appointment.
func GenerateMedicalSummaries(src Source, appointments []entity.Appointment) []entity.MedicalSummary {
	var summaries []entity.MedicalSummary
	counter := 1

	for i := range appointments {
		if !appointments[i].IsCompleted() {
			continue
		}
		summaries = append(summaries, entity.MedicalSummary{
			ID:               sequenceID("M", counter),
			AppointmentID:    appointments[i].ID,
			TreatmentSummary: pick(src, treatmentSummaries),
		})
		counter++
	}

	return summaries
}
