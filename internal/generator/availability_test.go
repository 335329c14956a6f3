package generator

import (
	"testing"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

func testClinic(id int, opening, closing entity.ClockTime) entity.Clinic {
	return entity.Clinic{ID: id, Name: "Clinic", Type: "General", OpeningHours: opening, ClosingHours: closing}
}

func TestDayBlocksPartitionOpeningHours(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	opening := entity.ClockTime{Hour: 8}.On(day)
	closing := entity.ClockTime{Hour: 18}.On(day)

	for seed := uint64(1); seed <= 50; seed++ {
		blocks := dayBlocks(NewSource(seed), opening, closing)
		if len(blocks) == 0 {
			t.Fatalf("seed %d: no blocks generated", seed)
		}
		if !blocks[0].StartDatetime.Equal(opening) {
			t.Fatalf("seed %d: first block starts at %v, want %v", seed, blocks[0].StartDatetime, opening)
		}
		if last := blocks[len(blocks)-1]; !last.EndDatetime.Equal(closing) {
			t.Fatalf("seed %d: last block ends at %v, want %v", seed, last.EndDatetime, closing)
		}
		for i, b := range blocks {
			if !b.StartDatetime.Before(b.EndDatetime) {
				t.Errorf("seed %d: block %d is empty: %v-%v", seed, i, b.StartDatetime, b.EndDatetime)
			}
			if i > 0 && !blocks[i-1].EndDatetime.Equal(b.StartDatetime) {
				t.Errorf("seed %d: gap or overlap between block %d and %d", seed, i-1, i)
			}
		}
	}
}

func TestDayBlocksLunchIsUnavailable(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	src := &scriptedSource{
		// lunch at 12:00; at 13:30 no lunch and not available
		floats: []float64{0.1, 0.9, 0.9},
		ints:   []int{1, 0},
	}

	blocks := dayBlocks(src, entity.ClockTime{Hour: 12}.On(day), entity.ClockTime{Hour: 15}.On(day))
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Type != entity.ScheduleTypeUnavailable || blocks[0].Duration() != 90*time.Minute {
		t.Errorf("expected 90 minute lunch block, got %s %v", blocks[0].Type, blocks[0].Duration())
	}
	if blocks[1].Type != entity.ScheduleTypeUnavailable {
		t.Errorf("draw 0.9 should leave block unavailable, got %s", blocks[1].Type)
	}
	if !blocks[1].EndDatetime.Equal(entity.ClockTime{Hour: 15}.On(day)) {
		t.Errorf("last block not clipped to closing: %v", blocks[1].EndDatetime)
	}
}

func TestDayBlocksEmptyWhenClinicNeverOpens(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	at := entity.ClockTime{Hour: 9}.On(day)
	if blocks := dayBlocks(NewSource(1), at, at); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestGenerateSchedulesCoversWindow(t *testing.T) {
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	window := NewWindow(today, today.AddDate(0, 0, 3), 2)
	clinics := []entity.Clinic{testClinic(1, entity.ClockTime{Hour: 8, Minute: 30}, entity.ClockTime{Hour: 17})}
	doctors := []entity.Doctor{
		{ID: "D000000001", ClinicID: 1, AppointmentDurationInMinutes: 15},
		{ID: "D000000002", ClinicID: 1, AppointmentDurationInMinutes: 30},
	}

	schedules, err := GenerateSchedules(NewSource(3), doctors, clinics, window)
	if err != nil {
		t.Fatalf("GenerateSchedules failed: %v", err)
	}

	type doctorDay struct {
		doctor string
		day    time.Time
	}
	covered := make(map[doctorDay]time.Duration)
	ids := make(map[string]bool)
	for _, s := range schedules {
		if ids[s.ID] {
			t.Fatalf("duplicate schedule id %s", s.ID)
		}
		ids[s.ID] = true
		covered[doctorDay{s.DoctorID, civilDate(s.StartDatetime)}] += s.Duration()
	}

	for key, total := range covered {
		if total != 8*time.Hour+30*time.Minute {
			t.Errorf("%s on %s covers %v, want 8h30m", key.doctor, key.day.Format("2006-01-02"), total)
		}
	}

	// Weekdays are never skipped: 2025-03-10..2025-03-14 are Mon..Fri.
	for _, d := range doctors {
		for day := window.Start; !day.After(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)); day = day.AddDate(0, 0, 1) {
			if _, ok := covered[doctorDay{d.ID, day}]; !ok {
				t.Errorf("%s has no blocks on weekday %s", d.ID, day.Format("2006-01-02"))
			}
		}
	}
}

func TestGenerateSchedulesUnknownClinic(t *testing.T) {
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	doctors := []entity.Doctor{{ID: "D000000001", ClinicID: 9}}

	_, err := GenerateSchedules(NewSource(1), doctors, nil, NewWindow(today, today, 0))
	if err == nil {
		t.Fatal("expected error for doctor without clinic")
	}
}

func TestWindowDaysInclusive(t *testing.T) {
	today := time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC)
	days := NewWindow(today, today.AddDate(0, 0, 2), 7).Days()
	if len(days) != 10 {
		t.Fatalf("expected 10 days, got %d", len(days))
	}
	if days[0] != time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected first day %v", days[0])
	}
}
