package generator

import (
	"sort"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

// FirstQueueNumber is the number handed to the first patient of the day.
const FirstQueueNumber = 1001

// currentHour is the simulated wall-clock hour on today's date.
const currentHour = 14

type ArrivalScenario string

const (
	ArrivalEarly    ArrivalScenario = "early"
	ArrivalOnTime   ArrivalScenario = "on_time"
	ArrivalLate     ArrivalScenario = "late"
	ArrivalVeryLate ArrivalScenario = "very_late"
	ArrivalNoShow   ArrivalScenario = "no_show"
)

var arrivalScenarios = []weighted[ArrivalScenario]{
	{ArrivalEarly, 0.35},
	{ArrivalOnTime, 0.30},
	{ArrivalLate, 0.20},
	{ArrivalVeryLate, 0.10},
	{ArrivalNoShow, 0.05},
}

// arrivalOffsets holds the inclusive minute range each scenario checks in at,
// relative to the appointment start.
var arrivalOffsets = map[ArrivalScenario][2]int{
	ArrivalEarly:    {-30, -5},
	ArrivalOnTime:   {-5, 0},
	ArrivalLate:     {5, 20},
	ArrivalVeryLate: {20, 40},
}

// PickArrivalScenario maps a draw in [0, 1) onto the arrival distribution.
func PickArrivalScenario(draw float64) ArrivalScenario {
	return pickWeightedOr(draw, arrivalScenarios, ArrivalOnTime)
}

// CheckInOffset draws how far from the appointment start a patient arrives.
// Scenarios without a range (no_show) return zero and false.
func CheckInOffset(src Source, scenario ArrivalScenario) (time.Duration, bool) {
	bounds, ok := arrivalOffsets[scenario]
	if !ok {
		return 0, false
	}
	return time.Duration(src.IntRange(bounds[0], bounds[1])) * time.Minute, true
}

// QueueStatusAt reports where a checked-in patient stands at the instant now.
func QueueStatusAt(appointmentStart, checkIn, now time.Time) entity.QueueStatus {
	if !appointmentStart.Before(now) {
		return entity.QueueStatusCheckedIn
	}
	switch {
	case checkIn.Before(now.Add(-time.Hour)):
		return entity.QueueStatusCompleted
	case checkIn.Before(now.Add(-30 * time.Minute)):
		return entity.QueueStatusInConsultation
	default:
		return entity.QueueStatusCalled
	}
}

// QueueResult is the outcome of simulating today's arrivals.
type QueueResult struct {
	Tickets   []entity.QueueTicket
	NoShowIDs map[string]struct{}
	Now       time.Time
}

// StatusCounts tallies tickets by queue status.
func (r *QueueResult) StatusCounts() map[entity.QueueStatus]int {
	counts := make(map[entity.QueueStatus]int)
	for _, t := range r.Tickets {
		counts[t.Status]++
	}
	return counts
}

// SimulateQueue checks in today's Upcoming appointments in start-time order. No-shows get
// no ticket and are collected for reconciliation.
func SimulateQueue(src Source, appointments []entity.Appointment, today time.Time) *QueueResult {
	day := civilDate(today)
	result := &QueueResult{
		NoShowIDs: make(map[string]struct{}),
		Now:       day.Add(currentHour * time.Hour),
	}

	var todays []entity.Appointment
	for _, a := range appointments {
		if a.IsUpcoming() && a.IsOn(day) {
			todays = append(todays, a)
		}
	}
	sort.SliceStable(todays, func(i, j int) bool {
		return todays[i].StartDatetime.Before(todays[j].StartDatetime)
	})

	queueNumber := FirstQueueNumber
	ticketID := 1

	for _, a := range todays {
		scenario := PickArrivalScenario(src.Float64())
		offset, arrives := CheckInOffset(src, scenario)
		if !arrives {
			result.NoShowIDs[a.ID] = struct{}{}
			continue
		}

		checkIn := a.StartDatetime.Add(offset)
		result.Tickets = append(result.Tickets, entity.QueueTicket{
			ID:            ticketID,
			AppointmentID: a.ID,
			Status:        QueueStatusAt(a.StartDatetime, checkIn, result.Now),
			CheckInTime:   checkIn,
			QueueNumber:   queueNumber,
		})
		ticketID++
		queueNumber++
	}

	return result
}
