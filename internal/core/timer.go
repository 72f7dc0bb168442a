package core

import "time"

// FixedStep paces generation advances at a steady rate independent of the
// frame rate. A rate of zero or less means every frame may advance.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting gps generations per second.
func NewFixedStep(gps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(gps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(gps)
}

// Ready reports whether the simulation should advance by one generation.
func (f *FixedStep) Ready() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			// Drop backlog after a stall instead of bursting.
			f.accumulator = f.step
		}
		return true
	}
	return false
}
