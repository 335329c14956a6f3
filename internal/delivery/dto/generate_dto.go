package dto

import "time"

type GenerateRequest struct {
	OutputDir       string `validate:"required"`
	Today           time.Time
	ScheduleEndDate time.Time
	HistoryDays     int `validate:"gte=0"`
	NumPatients     int `validate:"gte=1"`
	NumAppointments int `validate:"gte=0"`
	AttemptFactor   int `validate:"gte=1"`
	Seed            uint64
}

type ClinicWarningResponse struct {
	ClinicID int    `json:"clinic_id"`
	Name     string `json:"name"`
	Field    string `json:"field"`
	Raw      string `json:"raw"`
	Reason   string `json:"reason"`
}

// GenerateSummary reports what a generator run produced and where it fell short.
type GenerateSummary struct {
	OutputDir             string                  `json:"output_dir"`
	Seed                  uint64                  `json:"seed"`
	Today                 string                  `json:"today"`
	Clinics               int                     `json:"clinics"`
	Users                 int                     `json:"users"`
	Patients              int                     `json:"patients"`
	Doctors               int                     `json:"doctors"`
	Schedules             int                     `json:"schedules"`
	AppointmentsRequested int                     `json:"appointments_requested"`
	AppointmentsGenerated int                     `json:"appointments_generated"`
	AppointmentAttempts   int                     `json:"appointment_attempts"`
	Underfilled           bool                    `json:"underfilled"`
	MedicalSummaries      int                     `json:"medical_summaries"`
	QueueTickets          int                     `json:"queue_tickets"`
	NoShows               int                     `json:"no_shows"`
	QueueStatus           map[string]int          `json:"queue_status"`
	ClinicWarnings        []ClinicWarningResponse `json:"clinic_warnings,omitempty"`
	Files                 []string                `json:"files"`
}
