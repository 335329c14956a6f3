package generator

import (
	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// ClinicWarning records a clinic field that was replaced by a fallback or
// a clinic that cannot host any schedule.
type ClinicWarning struct {
	ClinicID int
	Name     string
	Field    string
	Raw      string
	Reason   string
}

// LoadClinics turns clinics.csv records into clinics with sequential ids starting at 1.
// Unparseable opening or closing hours fall back to 09:00:00 and are reported.
func LoadClinics(records []map[string]string) ([]entity.Clinic, []ClinicWarning) {
	clinics := make([]entity.Clinic, 0, len(records))
	var warnings []ClinicWarning

	for idx, record := range records {
		clinic := converter.RecordToClinic(record)
		clinic.ID = idx + 1

		opening, err := converter.ParseClockTime(record[converter.ColumnOpeningHours])
		if err != nil {
			opening = entity.DefaultClockTime
			warnings = append(warnings, ClinicWarning{
				ClinicID: clinic.ID,
				Name:     clinic.Name,
				Field:    converter.ColumnOpeningHours,
				Raw:      record[converter.ColumnOpeningHours],
				Reason:   "unparseable time, using " + entity.DefaultClockTime.String(),
			})
		}

		closing, err := converter.ParseClockTime(record[converter.ColumnClosingHours])
		if err != nil {
			closing = entity.DefaultClockTime
			warnings = append(warnings, ClinicWarning{
				ClinicID: clinic.ID,
				Name:     clinic.Name,
				Field:    converter.ColumnClosingHours,
				Raw:      record[converter.ColumnClosingHours],
				Reason:   "unparseable time, using " + entity.DefaultClockTime.String(),
			})
		}

		clinic.OpeningHours = opening
		clinic.ClosingHours = closing

		if !clinic.HasValidHours() {
			warnings = append(warnings, ClinicWarning{
				ClinicID: clinic.ID,
				Name:     clinic.Name,
				Field:    converter.ColumnClosingHours,
				Raw:      opening.String() + "-" + closing.String(),
				Reason:   "clinic does not open before it closes, no schedules will be generated",
			})
		}

		clinics = append(clinics, clinic)
	}

	return clinics, warnings
}
