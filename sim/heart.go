package sim

import "fmt"

// HeartSimulator produces intrinsic (unpaced) beats. Each chamber is
// scheduled one tick before the pacer's own deadline so that the heart and
// the pacer race for the same cycle.
type HeartSimulator struct {
	param    Param
	interval int64
	sink     EventSink
}

// NewHeartSimulator creates a heart that reports its beats to sink.
// A nil sink discards notifications.
func NewHeartSimulator(param Param, sink EventSink) *HeartSimulator {
	if sink == nil {
		sink = discardSink{}
	}
	return &HeartSimulator{
		param:    param,
		interval: param.LRLInterval(),
		sink:     sink,
	}
}

// Tick reports whether the atrium and the ventricle beat on their own at
// tick now. Every probabilistic decision consumes exactly one value of rng.
func (h *HeartSimulator) Tick(mode Mode, elapsedAtrial, elapsedVentricular, now int64, rng *PseudoRandomSource) (atrial, ventricular bool) {
	if rng == nil {
		panic("HeartSimulator.Tick: rng must not be nil")
	}
	scheduled := h.interval - 1

	if elapsedAtrial == scheduled {
		switch mode {
		case ModeOff, ModeVvt:
			atrial = true
		case ModeAoo:
			atrial = rng.coinFlip()
		default:
			panic(fmt.Sprintf("unhandled mode %v", mode))
		}
		if atrial {
			h.beat(Atrial, now, now*timeScale)
		}
	}

	if elapsedVentricular == scheduled {
		switch mode {
		case ModeOff, ModeAoo:
			ventricular = true
			// This channel logs the raw tick, unlike every other notification.
			h.beat(Ventricular, now, now)
		case ModeVvt:
			ventricular = rng.coinFlip()
			if ventricular {
				h.beat(Ventricular, now, now*timeScale)
			}
		default:
			panic(fmt.Sprintf("unhandled mode %v", mode))
		}
	} else if mode == ModeVvt && elapsedVentricular > h.param.VRP {
		// Rare mid-cycle beat that exercises the triggered-pulse path.
		ventricular = rng.rare()
		if ventricular {
			h.beat(Ventricular, now, now*timeScale)
		}
	}

	return atrial, ventricular
}

func (h *HeartSimulator) beat(chamber Chamber, now, logged int64) {
	h.sink.Notify(Event{
		Kind:    EventIntrinsicBeat,
		Chamber: chamber,
		Tick:    now,
		Time:    logged,
	})
}
