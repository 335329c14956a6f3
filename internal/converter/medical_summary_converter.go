package converter

import (
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// MedicalSummaryToRecord converts a MedicalSummary entity to a medical_summary.csv row
func MedicalSummaryToRecord(summary *entity.MedicalSummary) []string {
	return []string{summary.ID, summary.AppointmentID, summary.TreatmentSummary}
}

// MedicalSummariesToRecords converts a slice of MedicalSummary entities to medical_summary.csv rows
func MedicalSummariesToRecords(summaries []entity.MedicalSummary) [][]string {
	records := make([][]string, len(summaries))
	for i := range summaries {
		records[i] = MedicalSummaryToRecord(&summaries[i])
	}
	return records
}

func RecordToMedicalSummary(record map[string]string) (*entity.MedicalSummary, error) {
	var (
		summary entity.MedicalSummary
		err     error
	)
	if summary.ID, err = field(record, ColumnSummaryID); err != nil {
		return nil, err
	}
	if summary.AppointmentID, err = field(record, ColumnAppointmentID); err != nil {
		return nil, err
	}
	if summary.TreatmentSummary, err = field(record, ColumnTreatmentSummary); err != nil {
		return nil, err
	}
	return &summary, nil
}
