package actor

import (
	"math"
	"time"
)

// Default scheduler parameters.
const (
	DefaultTickRate = 30
	DefaultMaxFrame = 0.25 // seconds
)

// tickEpsilon absorbs float error so that a frame of exactly 1/TickRate
// seconds always yields one tick.
const tickEpsilon = 1e-6

// Clock converts variable frame times into whole strict ticks at a fixed rate
// (accumulator pattern). Long frames are capped at MaxFrame.
type Clock struct {
	TickRate int     // strict ticks per second
	MaxFrame float64 // longest frame accepted, in seconds

	acc   float64 // pending fraction of a tick
	ticks uint64
}

// NewClock creates a clock with the given tick rate and the default frame cap.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Clock{
		TickRate: tickRate,
		MaxFrame: DefaultMaxFrame,
	}
}

// Advance adds dt seconds of wall-clock time and returns how many strict
// ticks are now due. Negative or zero dt yields no ticks.
func (c *Clock) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}

	// Cap frame time to avoid spiral of death
	if c.MaxFrame > 0 && dt > c.MaxFrame {
		dt = c.MaxFrame
	}

	c.acc += dt * float64(c.TickRate)
	n := int(math.Floor(c.acc + tickEpsilon))
	c.acc = math.Max(0, c.acc-float64(n))
	c.ticks += uint64(n)
	return n
}

// Alpha returns the fraction of the next tick already accumulated.
func (c *Clock) Alpha() float64 {
	return c.acc
}

// Ticks returns the total number of strict ticks produced.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// TickDuration returns the wall-clock length of one strict tick.
func (c *Clock) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Reset drops any accumulated partial tick.
func (c *Clock) Reset() {
	c.acc = 0
}
