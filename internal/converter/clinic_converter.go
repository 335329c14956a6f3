package converter

import (
	"strings"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// RecordToClinic copies the descriptive columns of a clinics.csv row. Opening and
// closing hours are parsed separately so the caller decides on fallbacks.
func RecordToClinic(record map[string]string) entity.Clinic {
	return entity.Clinic{
		Name:            strings.TrimSpace(record[ColumnName]),
		Address:         strings.TrimSpace(record[ColumnAddress]),
		TelephoneNumber: strings.TrimSpace(record[ColumnTelephoneNumber]),
		Type:            strings.TrimSpace(record[ColumnType]),
	}
}
