package sim

import "fmt"

// PulseParam describes the electrical shape of a single pulse.
type PulseParam struct {
	Amplitude float64 // volts, >= 0
	Width     float64 // milliseconds, >= 0
}

// Param groups the pacing parameters of a run. Immutable once a run starts.
type Param struct {
	LRL         int64      // lower rate limit in pulses per minute (must be > 0)
	Atrial      PulseParam // atrial pulse shape
	Ventricular PulseParam // ventricular pulse shape
	VRP         int64      // ventricular refractory period in ticks
}

// DefaultParam is the factory configuration of the device.
var DefaultParam = Param{
	LRL:         60,
	Atrial:      PulseParam{Amplitude: 3.5, Width: 0.4},
	Ventricular: PulseParam{Amplitude: 3.5, Width: 0.4},
	VRP:         32,
}

// LRLInterval returns the number of ticks in one lower-rate-limit cycle.
// Uses integer division: (lrl * 100) / 60.
func (p Param) LRLInterval() int64 {
	return (p.LRL * 100) / 60
}

// Validate checks that the parameters describe a usable pacing cycle.
func (p Param) Validate() error {
	if p.LRL <= 0 {
		return fmt.Errorf("lrl must be positive, got %d", p.LRL)
	}
	if p.VRP < 0 {
		return fmt.Errorf("vrp must be non-negative, got %d", p.VRP)
	}
	if p.VRP >= p.LRLInterval() {
		return fmt.Errorf("vrp (%d) must be less than the lrl interval (%d)", p.VRP, p.LRLInterval())
	}
	if err := p.Atrial.validate("atrial"); err != nil {
		return err
	}
	return p.Ventricular.validate("ventricular")
}

func (pp PulseParam) validate(chamber string) error {
	if pp.Amplitude < 0 {
		return fmt.Errorf("%s.amplitude must be non-negative, got %g", chamber, pp.Amplitude)
	}
	if pp.Width < 0 {
		return fmt.Errorf("%s.width must be non-negative, got %g", chamber, pp.Width)
	}
	return nil
}

// SimConfig groups everything NewSimulator needs apart from its collaborators.
type SimConfig struct {
	Mode                      Mode
	Param                     Param
	Seed                      uint64 // starting cursor of the PseudoRandomSource
	InitialVentricularElapsed int64  // ventricular elapsed counter at tick 0
	TraceEnabled              bool   // record a trace.TickRecord for every tick with activity
}

// DefaultSimConfig returns the configuration of the reference demo run for mode.
func DefaultSimConfig(mode Mode) SimConfig {
	return SimConfig{
		Mode:                      mode,
		Param:                     DefaultParam,
		Seed:                      DefaultSeed,
		InitialVentricularElapsed: 50,
	}
}
