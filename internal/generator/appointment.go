package generator

import (
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	pastCompletedProbability   = 0.9
	futureUpcomingProbability  = 0.95
	defaultAppointmentAttempts = 3
)

// SlotLedger remembers which (doctor, start) pairs are already booked.
type SlotLedger map[string]map[time.Time]struct{}

// Reserve books the slot and reports whether it was still free.
func (l SlotLedger) Reserve(doctorID string, start time.Time) bool {
	starts, ok := l[doctorID]
	if !ok {
		starts = make(map[time.Time]struct{})
		l[doctorID] = starts
	}
	if _, taken := starts[start]; taken {
		return false
	}
	starts[start] = struct{}{}
	return true
}

// Booked reports whether the slot has been reserved.
func (l SlotLedger) Booked(doctorID string, start time.Time) bool {
	_, taken := l[doctorID][start]
	return taken
}

type AppointmentOptions struct {
	Target        int
	AttemptFactor int
	Today         time.Time
}

// AppointmentResult carries the generated appointments together with the sampling
// effort, so callers can tell when the slot space ran out before the target.
type AppointmentResult struct {
	Appointments []entity.Appointment
	Requested    int
	Attempts     int
}

// Underfilled reports whether fewer appointments than requested were produced.
func (r *AppointmentResult) Underfilled() bool {
	return len(r.Appointments) < r.Requested
}

// AppointmentGenerator samples appointments out of AVAILABLE schedule blocks.
type AppointmentGenerator struct {
	src    Source
	opts   AppointmentOptions
	ledger SlotLedger
}

func NewAppointmentGenerator(src Source, opts AppointmentOptions) *AppointmentGenerator {
	if opts.AttemptFactor <= 0 {
		opts.AttemptFactor = defaultAppointmentAttempts
	}
	return &AppointmentGenerator{
		src:    src,
		opts:   opts,
		ledger: make(SlotLedger),
	}
}

// Generate draws a random AVAILABLE block and a random slot inside it until the target
// is reached or AttemptFactor*Target draws have been spent. Draws landing on an already
// booked (doctor, start) pair are discarded.
func (g *AppointmentGenerator) Generate(schedules []entity.Schedule, patients []uuid.UUID, doctors []entity.Doctor) (*AppointmentResult, error) {
	result := &AppointmentResult{Requested: g.opts.Target}
	if g.opts.Target <= 0 {
		return result, nil
	}
	if len(patients) == 0 {
		return nil, ErrNoPatients
	}

	var available []*entity.Schedule
	for i := range schedules {
		if schedules[i].IsAvailable() {
			available = append(available, &schedules[i])
		}
	}
	if len(available) == 0 {
		return result, nil
	}

	doctorLookup := make(map[string]*entity.Doctor, len(doctors))
	for i := range doctors {
		doctorLookup[doctors[i].ID] = &doctors[i]
	}

	today := civilDate(g.opts.Today)
	maxAttempts := g.opts.Target * g.opts.AttemptFactor
	counter := 1

	for len(result.Appointments) < g.opts.Target && result.Attempts < maxAttempts {
		result.Attempts++

		block := available[g.src.IntN(len(available))]
		slot := time.Duration(entity.DefaultSlotMinutes) * time.Minute
		if doctor, ok := doctorLookup[block.DoctorID]; ok {
			slot = doctor.SlotDuration()
		}

		slots := block.SlotCount(slot)
		if slots == 0 {
			continue
		}

		start := block.StartDatetime.Add(time.Duration(g.src.IntN(slots)) * slot)
		if !g.ledger.Reserve(block.DoctorID, start) {
			continue
		}

		status := g.deriveStatus(start, today)
		result.Appointments = append(result.Appointments, entity.Appointment{
			ID:            sequenceID("A", counter),
			PatientID:     patients[g.src.IntN(len(patients))],
			DoctorID:      block.DoctorID,
			StartDatetime: start,
			EndDatetime:   start.Add(slot),
			Status:        status,
		})
		counter++
	}

	return result, nil
}

// deriveStatus labels an appointment by its date relative to today.
func (g *AppointmentGenerator) deriveStatus(start, today time.Time) entity.AppointmentStatus {
	day := civilDate(start)
	switch {
	case day.Before(today):
		if chance(g.src, pastCompletedProbability) {
			return entity.AppointmentStatusCompleted
		}
		return entity.AppointmentStatusCancelled
	case day.Equal(today):
		return entity.AppointmentStatusUpcoming
	default:
		if chance(g.src, futureUpcomingProbability) {
			return entity.AppointmentStatusUpcoming
		}
		return entity.AppointmentStatusCancelled
	}
}
