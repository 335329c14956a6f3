package converter

import (
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// ScheduleToRecord converts a Schedule entity to a schedule.csv row
func ScheduleToRecord(schedule *entity.Schedule) []string {
	return []string{
		schedule.ID,
		schedule.DoctorID,
		FormatDateTime(schedule.StartDatetime),
		FormatDateTime(schedule.EndDatetime),
		string(schedule.Type),
	}
}

// SchedulesToRecords converts a slice of Schedule entities to schedule.csv rows
func SchedulesToRecords(schedules []entity.Schedule) [][]string {
	records := make([][]string, len(schedules))
	for i := range schedules {
		records[i] = ScheduleToRecord(&schedules[i])
	}
	return records
}

func RecordToSchedule(record map[string]string) (*entity.Schedule, error) {
	var (
		schedule entity.Schedule
		err      error
	)
	if schedule.ID, err = field(record, ColumnScheduleID); err != nil {
		return nil, err
	}
	if schedule.DoctorID, err = field(record, ColumnDoctorID); err != nil {
		return nil, err
	}
	if schedule.StartDatetime, err = dateTimeField(record, ColumnStartDatetime); err != nil {
		return nil, err
	}
	if schedule.EndDatetime, err = dateTimeField(record, ColumnEndDatetime); err != nil {
		return nil, err
	}
	scheduleType, err := field(record, ColumnType)
	if err != nil {
		return nil, err
	}
	schedule.Type = entity.ScheduleType(scheduleType)
	return &schedule, nil
}
