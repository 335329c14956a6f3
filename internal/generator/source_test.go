package generator

import "github.com/google/uuid"

// scriptedSource replays fixed draws. Exhausted queues yield zero.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) nextInt() int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) IntN(n int) int {
	return s.nextInt() % n
}

func (s *scriptedSource) IntRange(min, max int) int {
	return min + s.nextInt()%(max-min+1)
}

func (s *scriptedSource) UUID() string {
	return uuid.NewString()
}

func (s *scriptedSource) ShuffleStrings(a []string) {}
