package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid value")
)

var clockLayouts = []string{"3:04:05 PM", "15:04:05"}

// ParseClockTime accepts "8:00:00 am" style times, case-insensitively, and falls back
// to 24-hour "HH:MM:SS".
func ParseClockTime(raw string) (entity.ClockTime, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return entity.ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return entity.ClockTime{}, fmt.Errorf("%w: clock time %q", ErrInvalidValue, raw)
}

func FormatDateTime(t time.Time) string {
	return t.Format(entity.DateTimeLayout)
}

// ParseDateTime reads a "YYYY-MM-DD HH:MM:SS" timestamp as UTC.
func ParseDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(entity.DateTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: datetime %q", ErrInvalidValue, raw)
	}
	return t, nil
}

func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func field(record map[string]string, column string) (string, error) {
	value, ok := record[column]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	return strings.TrimSpace(value), nil
}

func intField(record map[string]string, column string) (int, error) {
	raw, err := field(record, column)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, column, raw)
	}
	return n, nil
}

func dateTimeField(record map[string]string, column string) (time.Time, error) {
	raw, err := field(record, column)
	if err != nil {
		return time.Time{}, err
	}
	return ParseDateTime(raw)
}
