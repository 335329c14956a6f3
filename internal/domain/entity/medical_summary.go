package entity

// MedicalSummary is the treatment note attached to a completed appointment.
type MedicalSummary struct {
	ID               string `gorm:"column:summary_id;type:char(10);primaryKey"`
	AppointmentID    string `gorm:"type:char(10);not null;uniqueIndex"`
	TreatmentSummary string `gorm:"type:text"`
}

func (MedicalSummary) TableName() string {
	return "medical_summary"
}
