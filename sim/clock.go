package sim

import (
	"fmt"
	"time"
)

// Clock advances wall time by approximately one tick. It has no return value
// and no timeout semantics.
type Clock interface {
	Advance()
}

// Clock names accepted by NewClock.
const (
	ClockBusy  = "busy"
	ClockSleep = "sleep"
	ClockNone  = "none"
)

// NewClock returns the named clock. tick is only used by the sleep clock.
func NewClock(name string, tick time.Duration) (Clock, error) {
	switch name {
	case ClockBusy, "":
		return &BusyClock{Iterations: 5000}, nil
	case ClockSleep:
		if tick <= 0 {
			return nil, fmt.Errorf("sleep clock needs a positive tick, got %v", tick)
		}
		return SleepClock{Tick: tick}, nil
	case ClockNone:
		return NoopClock{}, nil
	default:
		return nil, fmt.Errorf("unknown clock %q; valid: busy, sleep, none", name)
	}
}

// BusyClock burns a fixed amount of computation per tick, approximating one
// millisecond on the original target.
type BusyClock struct {
	Iterations int
	sum        int // kept so the loop has an observable result
}

// Advance runs the busy loop once.
func (c *BusyClock) Advance() {
	j := 0
	for i := 0; i < c.Iterations; i++ {
		if i%7 == 0 {
			j++
		}
		if i%253 == 0 {
			j /= 2
		}
	}
	c.sum += j
}

// SleepClock sleeps for Tick on every advance.
type SleepClock struct {
	Tick time.Duration
}

// Advance sleeps for one tick.
func (c SleepClock) Advance() {
	time.Sleep(c.Tick)
}

// NoopClock returns immediately.
type NoopClock struct{}

// Advance does nothing.
func (NoopClock) Advance() {}

// VirtualClock counts advances without consuming wall time.
type VirtualClock struct {
	Ticks int64
}

// Advance increments the virtual tick count.
func (c *VirtualClock) Advance() {
	c.Ticks++
}
