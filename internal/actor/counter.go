// Package actor implements the fixed-tick entity machinery: tick counters,
// the strict-tick clock, the Actor/Stage scheduling contract and the Ball
// presentation state machine that every visual entity reduces to.
package actor

import "fmt"

// Counter is a tick countdown. Its ratio Count/Total drives interpolation.
// Invariant: 0 <= Count < Total, Total >= 1.
type Counter struct {
	Count int
	Total int
}

// NewCounter creates a counter with the given budget, already armed.
func NewCounter(total int) Counter {
	c := Counter{}
	c.Reset(total)
	return c
}

// Reset changes the budget and arms the counter.
func (c *Counter) Reset(total int) {
	if total < 1 {
		panic(fmt.Sprintf("actor: counter total must be >= 1, got %d", total))
	}
	c.Total = total
	c.Arm()
}

// Arm restarts the countdown at Total-1.
func (c *Counter) Arm() {
	c.Count = c.Total - 1
}

// Tick advances the countdown by one strict tick.
// It returns true when the counter was already at zero: the owner must
// transition (or re-arm a periodic state) on this tick.
func (c *Counter) Tick() bool {
	if c.Count == 0 {
		return true
	}
	c.Count--
	return false
}

// Ratio returns Count/Total in [0, 1).
func (c Counter) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Count) / float64(c.Total)
}
