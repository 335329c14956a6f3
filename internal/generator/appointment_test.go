package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
)

func TestSlotLedgerReserve(t *testing.T) {
	ledger := make(SlotLedger)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	if !ledger.Reserve("D000000001", start) {
		t.Fatal("first reservation should succeed")
	}
	if ledger.Reserve("D000000001", start) {
		t.Fatal("second reservation of the same slot should fail")
	}
	if !ledger.Reserve("D000000002", start) {
		t.Fatal("another doctor may use the same start time")
	}
	if !ledger.Booked("D000000001", start) {
		t.Fatal("slot should be reported as booked")
	}
}

func TestAppointmentGeneratorSingleBlockCapacity(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	block := entity.Schedule{
		ID:            "S000000001",
		DoctorID:      "D000000001",
		StartDatetime: day.Add(8 * time.Hour),
		EndDatetime:   day.Add(10 * time.Hour),
		Type:          entity.ScheduleTypeAvailable,
	}
	doctors := []entity.Doctor{{ID: "D000000001", ClinicID: 1, AppointmentDurationInMinutes: 15}}
	patients := []uuid.UUID{uuid.New(), uuid.New()}

	gen := NewAppointmentGenerator(NewSource(11), AppointmentOptions{Target: 50, AttemptFactor: 3, Today: day})
	result, err := gen.Generate([]entity.Schedule{block}, patients, doctors)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(result.Appointments) > 8 {
		t.Fatalf("a two hour block holds at most 8 fifteen minute slots, got %d", len(result.Appointments))
	}
	if !result.Underfilled() {
		t.Error("expected the result to be underfilled")
	}
	if result.Attempts != 150 {
		t.Errorf("expected all 150 attempts to be spent, got %d", result.Attempts)
	}

	seen := make(map[time.Time]bool)
	for _, a := range result.Appointments {
		if seen[a.StartDatetime] {
			t.Fatalf("slot %v booked twice", a.StartDatetime)
		}
		seen[a.StartDatetime] = true
		if !block.Contains(a.StartDatetime, a.EndDatetime) {
			t.Errorf("appointment %v-%v outside block", a.StartDatetime, a.EndDatetime)
		}
		if a.Status != entity.AppointmentStatusUpcoming {
			t.Errorf("appointment on today should be Upcoming, got %s", a.Status)
		}
	}
}

func TestAppointmentGeneratorRespectsAvailability(t *testing.T) {
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	clinics := []entity.Clinic{
		testClinic(1, entity.ClockTime{Hour: 8}, entity.ClockTime{Hour: 18}),
		testClinic(2, entity.ClockTime{Hour: 9}, entity.ClockTime{Hour: 17, Minute: 30}),
	}
	src := NewSource(21)
	doctors := GenerateDoctors(src, len(clinics))
	schedules, err := GenerateSchedules(src, doctors, clinics, NewWindow(today, today.AddDate(0, 0, 5), 7))
	if err != nil {
		t.Fatalf("GenerateSchedules failed: %v", err)
	}
	patients := PatientIDs(GenerateUsers(src, len(clinics), 20))

	gen := NewAppointmentGenerator(src, AppointmentOptions{Target: 300, AttemptFactor: 3, Today: today})
	result, err := gen.Generate(schedules, patients, doctors)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(result.Appointments) == 0 {
		t.Fatal("expected appointments to be generated")
	}

	durations := make(map[string]time.Duration)
	for i := range doctors {
		durations[doctors[i].ID] = doctors[i].SlotDuration()
	}

	type slot struct {
		doctor string
		start  time.Time
	}
	used := make(map[slot]bool)
	for _, a := range result.Appointments {
		key := slot{a.DoctorID, a.StartDatetime}
		if used[key] {
			t.Fatalf("doctor %s double-booked at %v", a.DoctorID, a.StartDatetime)
		}
		used[key] = true

		if got := a.EndDatetime.Sub(a.StartDatetime); got != durations[a.DoctorID] {
			t.Errorf("appointment %s lasts %v, doctor slot is %v", a.ID, got, durations[a.DoctorID])
		}

		inside := false
		for i := range schedules {
			s := &schedules[i]
			if s.DoctorID == a.DoctorID && s.IsAvailable() && s.Contains(a.StartDatetime, a.EndDatetime) {
				inside = true
				break
			}
		}
		if !inside {
			t.Errorf("appointment %s is not inside an AVAILABLE block of %s", a.ID, a.DoctorID)
		}

		day := civilDate(a.StartDatetime)
		switch {
		case day.Equal(today) && a.Status != entity.AppointmentStatusUpcoming:
			t.Errorf("appointment %s today has status %s", a.ID, a.Status)
		case day.Before(today) && a.Status != entity.AppointmentStatusCompleted && a.Status != entity.AppointmentStatusCancelled:
			t.Errorf("past appointment %s has status %s", a.ID, a.Status)
		case day.After(today) && a.Status != entity.AppointmentStatusUpcoming && a.Status != entity.AppointmentStatusCancelled:
			t.Errorf("future appointment %s has status %s", a.ID, a.Status)
		}
	}
}

func TestAppointmentGeneratorWithoutPatients(t *testing.T) {
	gen := NewAppointmentGenerator(NewSource(1), AppointmentOptions{Target: 5})
	if _, err := gen.Generate(nil, nil, nil); !errors.Is(err, ErrNoPatients) {
		t.Fatalf("expected ErrNoPatients, got %v", err)
	}
}

func TestAppointmentGeneratorZeroTarget(t *testing.T) {
	gen := NewAppointmentGenerator(NewSource(1), AppointmentOptions{})
	result, err := gen.Generate(nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Appointments) != 0 || result.Underfilled() {
		t.Fatalf("expected an empty, complete result, got %+v", result)
	}
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		draw  float64
		want  entity.AppointmentStatus
	}{
		{"past completed", today.Add(-20 * time.Hour), 0.5, entity.AppointmentStatusCompleted},
		{"past cancelled", today.Add(-20 * time.Hour), 0.95, entity.AppointmentStatusCancelled},
		{"today", today.Add(10 * time.Hour), 0.99, entity.AppointmentStatusUpcoming},
		{"future upcoming", today.Add(30 * time.Hour), 0.9, entity.AppointmentStatusUpcoming},
		{"future cancelled", today.Add(30 * time.Hour), 0.96, entity.AppointmentStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewAppointmentGenerator(&scriptedSource{floats: []float64{tt.draw}}, AppointmentOptions{})
			if got := gen.deriveStatus(tt.start, today); got != tt.want {
				t.Errorf("deriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}
