package dice

import "fmt"

// Scripted is a Source that replays fixed values, for tests that need to
// steer a specific branch. Float and int queues are consumed independently.
// Running out of values panics so a test never silently reads a zero roll.
type Scripted struct {
	Floats []float64
	Ints   []int
}

// NewScripted creates a Scripted source.
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{Floats: floats, Ints: ints}
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("dice: scripted source ran out of floats")
	}
	f := s.Floats[0]
	s.Floats = s.Floats[1:]
	return f
}

// Intn returns the next scripted int. The value must already lie in [0, n).
func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		panic("dice: scripted source ran out of ints")
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("dice: scripted int %d outside [0, %d)", v, n))
	}
	return v
}

// Remaining reports how many scripted floats and ints are left unread.
func (s *Scripted) Remaining() (floats, ints int) {
	return len(s.Floats), len(s.Ints)
}
