// sim/simulator.go
package sim

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pacing-sim/pacing-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, the per-chamber
// elapsed counters and the tick loop. It exclusively owns its
// PseudoRandomSource.
type Simulator struct {
	Mode  Mode
	Param Param
	// Clock is the global tick counter.
	Clock int64
	// Ticks since each chamber was last pulsed, by the pacer or the heart.
	ElapsedAtrial      int64
	ElapsedVentricular int64
	AtrialPulseCount   int

	RNG    *PseudoRandomSource
	Heart  *HeartSimulator
	Engine *PacingEngine
	Delay  Clock
	Sink   EventSink
	// Trace is nil unless SimConfig.TraceEnabled is set.
	Trace   *trace.SimulationTrace
	Metrics *Metrics
}

// NewSimulator creates a Simulator ready to Run.
// A nil clock means NoopClock; a nil sink discards notifications.
// Panics if cfg.Param.LRL is not positive; callers validate configuration
// with Param.Validate before reaching this point.
func NewSimulator(cfg SimConfig, clock Clock, sink EventSink) *Simulator {
	if cfg.Param.LRL <= 0 {
		panic(fmt.Sprintf("Simulator: LRL must be > 0, got %d", cfg.Param.LRL))
	}
	if cfg.InitialVentricularElapsed < 0 {
		panic(fmt.Sprintf("Simulator: InitialVentricularElapsed must be >= 0, got %d", cfg.InitialVentricularElapsed))
	}
	if clock == nil {
		clock = NoopClock{}
	}
	if sink == nil {
		sink = discardSink{}
	}

	s := &Simulator{
		Mode:               cfg.Mode,
		Param:              cfg.Param,
		ElapsedVentricular: cfg.InitialVentricularElapsed,
		RNG:                NewPseudoRandomSource(cfg.Seed),
		Heart:              NewHeartSimulator(cfg.Param, sink),
		Engine:             NewPacingEngine(cfg.Param, sink),
		Delay:              clock,
		Sink:               sink,
		Metrics:            NewMetrics(),
	}
	s.Metrics.Mode = cfg.Mode.String()
	if cfg.TraceEnabled {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{
			Level: trace.TraceLevelDecisions,
			Mode:  cfg.Mode.String(),
		})
	}
	return s
}

// Run advances the simulation until target atrial pulses have been observed.
// A non-positive target returns immediately.
func (sim *Simulator) Run(target int) {
	logrus.Infof("Demo start with mode: %s", sim.Mode)
	start := time.Now()

	for sim.AtrialPulseCount < target {
		sim.Step()
	}

	sim.Metrics.Ticks = sim.Clock
	sim.Metrics.RandomDraws = sim.RNG.Draws()
	sim.Metrics.WallTime = time.Since(start)
	logrus.Infof("[tick %07d] Demo end.", sim.Clock)
}

// Step executes exactly one tick.
func (sim *Simulator) Step() {
	now := sim.Clock
	ea, ev := sim.ElapsedAtrial, sim.ElapsedVentricular

	heartA, heartV := sim.Heart.Tick(sim.Mode, ea, ev, now, sim.RNG)

	var pacerA, pacerV bool
	switch sim.Mode {
	case ModeAoo:
		pacerA = sim.Engine.DecideAtrial(sim.Mode, ea, now)
	case ModeVvt:
		pacerV = sim.Engine.DecideVentricular(sim.Mode, heartV, ev, now)
	case ModeOff:
	default:
		panic(fmt.Sprintf("unhandled mode %v", sim.Mode))
	}

	atrial := heartA || pacerA
	ventricular := heartV || pacerV
	// A ventricular pacer pulse before the escape interval was triggered by a sensed beat.
	triggered := pacerV && ev < sim.Param.LRLInterval()

	sim.account(heartA, heartV, pacerA, pacerV, triggered)
	if sim.Trace.Enabled() && (atrial || ventricular) {
		sim.Trace.RecordTick(trace.TickRecord{
			Tick:               now,
			ElapsedAtrial:      ea,
			ElapsedVentricular: ev,
			HeartAtrial:        heartA,
			HeartVentricular:   heartV,
			PacerAtrial:        pacerA,
			PacerVentricular:   pacerV,
			PacerTriggered:     triggered,
		})
	}

	if atrial {
		sim.AtrialPulseCount++
		sim.ElapsedAtrial = 0
	}
	if ventricular {
		sim.ElapsedVentricular = 0
	}

	sim.Delay.Advance()
	sim.ElapsedAtrial++
	sim.ElapsedVentricular++
	sim.Clock++
}

// account updates Metrics for one tick.
func (sim *Simulator) account(heartA, heartV, pacerA, pacerV, triggered bool) {
	m := sim.Metrics
	if heartA {
		m.AtrialIntrinsic++
	}
	if pacerA {
		m.AtrialPaced++
	}
	if heartA || pacerA {
		m.AtrialPulses++
		m.LastAtrialTick = sim.Clock
	}
	if heartV {
		m.VentricularIntrinsic++
	}
	if pacerV {
		if triggered {
			m.VentricularTriggered++
		} else {
			m.VentricularPaced++
		}
	}
	if heartV || pacerV {
		m.VentricularPulses++
	}
}

// Run executes a reference run in mode with the factory parameters and seed,
// no wall-clock delay and logrus notifications, and returns its metrics.
func Run(mode Mode, targetAtrialPulses int) *Metrics {
	s := NewSimulator(DefaultSimConfig(mode), NoopClock{}, LogSink{})
	s.Run(targetAtrialPulses)
	return s.Metrics
}
