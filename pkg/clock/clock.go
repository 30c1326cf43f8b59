package clock

import (
	"runtime"
	"time"
)

// DefaultSpinThreshold is the tail of each Precise sleep that is spun instead of slept.
const DefaultSpinThreshold = 2 * time.Millisecond

// Standard sleeps with time.Sleep.
type Standard struct{}

func (Standard) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// Precise sleeps until SpinThreshold before the deadline, then spins, yielding
// the processor between checks.
type Precise struct {
	SpinThreshold time.Duration
}

// NewPrecise returns a Precise sleeper with the default spin threshold.
func NewPrecise() Precise {
	return Precise{SpinThreshold: DefaultSpinThreshold}
}

func (p Precise) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	deadline := time.Now().Add(d)

	threshold := p.SpinThreshold
	if threshold < 0 {
		threshold = 0
	}
	if coarse := d - threshold; coarse > 0 {
		time.Sleep(coarse)
	}
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}
