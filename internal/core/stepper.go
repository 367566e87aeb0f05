package core

import "time"

// DefaultMaxCatchUp bounds how many logical ticks one frame may run, so a
// stalled terminal does not trigger a burst of simulation afterwards.
const DefaultMaxCatchUp = 5

// Stepper converts wall-clock frame time into a whole number of fixed
// simulation ticks. Leftover time carries into the next frame.
type Stepper struct {
	step       time.Duration
	maxCatchUp int
	acc        time.Duration
	last       time.Time
}

// NewStepper creates a stepper for the given logical tick rate.
func NewStepper(tickRate int) *Stepper {
	cfg := RuntimeConfig{TickRate: tickRate}
	return &Stepper{
		step:       cfg.TickInterval(),
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// Step returns the duration of one logical tick.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance adds elapsed time and returns how many ticks are due.
// Time beyond the catch-up cap is dropped.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	s.acc += elapsed

	n := int(s.acc / s.step)
	if n > s.maxCatchUp {
		n = s.maxCatchUp
		s.acc = 0
		return n
	}
	s.acc -= time.Duration(n) * s.step
	return n
}

// AdvanceTo advances by the time since the previous call. The first call
// always yields exactly one tick.
func (s *Stepper) AdvanceTo(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 1
	}
	elapsed := now.Sub(s.last)
	s.last = now
	return s.Advance(elapsed)
}

// Reset drops accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
	s.last = time.Time{}
}
