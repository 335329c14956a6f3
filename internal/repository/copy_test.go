package repository

import (
	"testing"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

func TestTimeOfDay(t *testing.T) {
	got := timeOfDay(entity.ClockTime{Hour: 8, Minute: 30, Second: 15})
	want := int64((8*3600 + 30*60 + 15) * 1_000_000)
	if !got.Valid || got.Microseconds != want {
		t.Fatalf("timeOfDay = %+v, want %d microseconds", got, want)
	}
}

func TestNullableText(t *testing.T) {
	if nullableText("") != nil {
		t.Error("empty string should map to NULL")
	}
	if nullableText("+6561234567") != "+6561234567" {
		t.Error("non-empty string should pass through")
	}
}
