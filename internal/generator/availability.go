package generator

import (
	"fmt"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

const (
	weekendSkipProbability = 0.3
	lunchProbability       = 0.7
	availableProbability   = 0.85
)

var (
	lunchBlockLengths = []time.Duration{60 * time.Minute, 90 * time.Minute}
	workBlockLengths  = []time.Duration{2 * time.Hour, 3 * time.Hour, 4 * time.Hour}
)

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow spans historyDays before today through end.
func NewWindow(today, end time.Time, historyDays int) Window {
	return Window{
		Start: civilDate(today).AddDate(0, 0, -historyDays),
		End:   civilDate(end),
	}
}

// Days lists every date in the window in order.
func (w Window) Days() []time.Time {
	var days []time.Time
	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// GenerateSchedules partitions each doctor's clinic hours into AVAILABLE and UNAVAILABLE
// blocks for every day in the window. Weekend days are sometimes dropped altogether.
func GenerateSchedules(src Source, doctors []entity.Doctor, clinics []entity.Clinic, window Window) ([]entity.Schedule, error) {
	clinicLookup := make(map[int]*entity.Clinic, len(clinics))
	for i := range clinics {
		clinicLookup[clinics[i].ID] = &clinics[i]
	}

	var schedules []entity.Schedule
	counter := 1
	days := window.Days()

	for _, doctor := range doctors {
		clinic, ok := clinicLookup[doctor.ClinicID]
		if !ok {
			return nil, fmt.Errorf("doctor %s: %w (clinic %d)", doctor.ID, ErrUnknownClinic, doctor.ClinicID)
		}

		for _, day := range days {
			if isWeekend(day) && chance(src, weekendSkipProbability) {
				continue
			}

			for _, block := range dayBlocks(src, clinic.OpeningHours.On(day), clinic.ClosingHours.On(day)) {
				block.ID = sequenceID("S", counter)
				block.DoctorID = doctor.ID
				schedules = append(schedules, block)
				counter++
			}
		}
	}

	return schedules, nil
}

// dayBlocks walks from opening to closing in variable-length chunks. Each chunk strictly
// advances the cursor and the last one is clipped to closing, so the blocks cover the
// day exactly once.
func dayBlocks(src Source, opening, closing time.Time) []entity.Schedule {
	var blocks []entity.Schedule

	for cursor := opening; cursor.Before(closing); {
		var blockType entity.ScheduleType
		var length time.Duration

		hour := cursor.Hour()
		if (hour == 12 || hour == 13) && chance(src, lunchProbability) {
			blockType = entity.ScheduleTypeUnavailable
			length = pick(src, lunchBlockLengths)
		} else {
			blockType = entity.ScheduleTypeUnavailable
			if chance(src, availableProbability) {
				blockType = entity.ScheduleTypeAvailable
			}
			length = pick(src, workBlockLengths)
		}

		end := cursor.Add(length)
		if end.After(closing) {
			end = closing
		}

		blocks = append(blocks, entity.Schedule{
			StartDatetime: cursor,
			EndDatetime:   end,
			Type:          blockType,
		})
		cursor = end
	}

	return blocks
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
