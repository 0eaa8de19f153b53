package sim

import "fmt"

// PacingEngine decides, per chamber and tick, whether the pacer fires.
// It holds only immutable parameters; every decision is a function of
// (mode, elapsed, sensed).
type PacingEngine struct {
	param    Param
	interval int64
	sink     EventSink
}

// NewPacingEngine creates an engine that reports delivered pulses to sink.
// A nil sink discards notifications.
func NewPacingEngine(param Param, sink EventSink) *PacingEngine {
	if sink == nil {
		sink = discardSink{}
	}
	return &PacingEngine{
		param:    param,
		interval: param.LRLInterval(),
		sink:     sink,
	}
}

// DecideAtrial implements AOO: fire once the LRL interval has elapsed,
// without consulting any sensed activity. Other modes never pace the atrium.
func (e *PacingEngine) DecideAtrial(mode Mode, elapsed, now int64) bool {
	switch mode {
	case ModeAoo:
		if elapsed >= e.interval {
			e.deliver(EventPacedPulse, Atrial, now)
			return true
		}
		return false
	case ModeOff, ModeVvt:
		return false
	default:
		panic(fmt.Sprintf("unhandled mode %v", mode))
	}
}

// DecideVentricular implements VVT. Escape pacing at the LRL interval takes
// precedence; otherwise a sensed beat outside the VRP triggers a supporting
// pulse. A sensed beat inside the VRP is ignored.
func (e *PacingEngine) DecideVentricular(mode Mode, sensed bool, elapsed, now int64) bool {
	switch mode {
	case ModeVvt:
		if elapsed >= e.interval {
			e.deliver(EventPacedPulse, Ventricular, now)
			return true
		}
		if sensed && elapsed > e.param.VRP {
			e.deliver(EventTriggeredPulse, Ventricular, now)
			return true
		}
		return false
	case ModeOff, ModeAoo:
		return false
	default:
		panic(fmt.Sprintf("unhandled mode %v", mode))
	}
}

func (e *PacingEngine) deliver(kind EventKind, chamber Chamber, now int64) {
	pulse := e.param.Atrial
	if chamber == Ventricular {
		pulse = e.param.Ventricular
	}
	e.sink.Notify(Event{
		Kind:    kind,
		Chamber: chamber,
		Tick:    now,
		Time:    now * timeScale,
		Pulse:   pulse,
	})
}
