package converter

// Column names shared by the generated CSV files and the tables they load into.
const (
	ColumnName            = "name"
	ColumnAddress         = "address"
	ColumnTelephoneNumber = "telephone_number"
	ColumnType            = "type"
	ColumnOpeningHours    = "opening_hours"
	ColumnClosingHours    = "closing_hours"

	ColumnUserID   = "user_id"
	ColumnRole     = "role"
	ColumnEmail    = "email"
	ColumnClinicID = "clinic_id"

	ColumnDoctorID                     = "doctor_id"
	ColumnAppointmentDurationInMinutes = "appointment_duration_in_minutes"

	ColumnScheduleID    = "schedule_id"
	ColumnStartDatetime = "start_datetime"
	ColumnEndDatetime   = "end_datetime"

	ColumnAppointmentID = "appointment_id"
	ColumnPatientID     = "patient_id"
	ColumnStatus        = "status"

	ColumnSummaryID        = "summary_id"
	ColumnTreatmentSummary = "treatment_summary"

	ColumnCheckInTime   = "check_in_time"
	ColumnQueueNumber   = "queue_number"
	ColumnIsFastTracked = "is_fast_tracked"
)

var (
	ClinicHeader         = []string{ColumnName, ColumnAddress, ColumnTelephoneNumber, ColumnType, ColumnOpeningHours, ColumnClosingHours}
	UserProfileHeader    = []string{ColumnUserID, ColumnName, ColumnRole, ColumnEmail, ColumnTelephoneNumber, ColumnClinicID}
	DoctorHeader         = []string{ColumnDoctorID, ColumnName, ColumnClinicID, ColumnAppointmentDurationInMinutes}
	ScheduleHeader       = []string{ColumnScheduleID, ColumnDoctorID, ColumnStartDatetime, ColumnEndDatetime, ColumnType}
	AppointmentHeader    = []string{ColumnAppointmentID, ColumnPatientID, ColumnDoctorID, ColumnStartDatetime, ColumnEndDatetime, ColumnStatus}
	MedicalSummaryHeader = []string{ColumnSummaryID, ColumnAppointmentID, ColumnTreatmentSummary}
	QueueTicketHeader    = []string{ColumnAppointmentID, ColumnStatus, ColumnCheckInTime, ColumnQueueNumber, ColumnIsFastTracked}
)
