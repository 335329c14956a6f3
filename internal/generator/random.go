package generator

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Source is the stream of random draws every generator stage consumes.
// *gofakeit.Faker satisfies it; tests substitute scripted sources.
type Source interface {
	Float64() float64
	IntN(n int) int
	IntRange(min, max int) int
	UUID() string
	ShuffleStrings(a []string)
}

// NewSource returns a faker seeded with seed. A zero seed draws a random one.
func NewSource(seed uint64) Source {
	return gofakeit.New(seed)
}

func chance(src Source, p float64) bool {
	return src.Float64() < p
}

func pick[T any](src Source, options []T) T {
	return options[src.IntN(len(options))]
}

type weighted[T any] struct {
	value  T
	weight float64
}

// pickWeighted walks the cumulative weights and returns the first option whose
// cumulative weight reaches draw. Rounding leftovers fall to the last option.
func pickWeighted[T any](draw float64, options []weighted[T]) T {
	return pickWeightedOr(draw, options, options[len(options)-1].value)
}

// pickWeightedOr is pickWeighted with an explicit result for draws past the
// cumulative total.
func pickWeightedOr[T any](draw float64, options []weighted[T], fallback T) T {
	cumulative := 0.0
	for _, o := range options {
		cumulative += o.weight
		if draw <= cumulative {
			return o.value
		}
	}
	return fallback
}

func newUserID(src Source) uuid.UUID {
	id, err := uuid.Parse(src.UUID())
	if err != nil {
		return uuid.New()
	}
	return id
}

// civilDate strips the clock from t, keeping its location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sequenceID(prefix string, n int) string {
	return fmt.Sprintf("%s%09d", prefix, n)
}
