package dto

type SeedRequest struct {
	DataDir string `validate:"required"`
}

// SeedSummary holds the row count of every table after seeding.
type SeedSummary struct {
	Migrations          int              `json:"migrations"`
	Clinics             int64            `json:"clinics"`
	Doctors             int64            `json:"doctors"`
	Identity            *IdentitySummary `json:"identity"`
	ProfilesUpdated     int64            `json:"profiles_updated"`
	Users               int64            `json:"users"`
	Appointments        int64            `json:"appointments"`
	AppointmentsDropped int              `json:"appointments_dropped"`
	Schedules           int64            `json:"schedules"`
	MedicalSummaries    int64            `json:"medical_summaries"`
	SummariesDropped    int              `json:"summaries_dropped"`
	QueueTickets        int64            `json:"queue_tickets"`
	TicketsDropped      int              `json:"tickets_dropped"`
	QueueCounters       int              `json:"queue_counters"`
}
