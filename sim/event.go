package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Chamber identifies a heart chamber.
type Chamber string

const (
	Atrial      Chamber = "atrial"
	Ventricular Chamber = "ventricular"
)

// EventKind classifies a notification.
type EventKind string

const (
	// EventPacedPulse is a pulse delivered by the pacer because the LRL interval expired.
	EventPacedPulse EventKind = "paced"
	// EventTriggeredPulse is a supporting pulse delivered on a sensed ventricular beat.
	EventTriggeredPulse EventKind = "triggered"
	// EventIntrinsicBeat is a beat produced by the heart itself.
	EventIntrinsicBeat EventKind = "intrinsic"
)

// timeScale is the factor applied to the tick counter in most notifications.
const timeScale = 10

// Event is a purely observational notification emitted by the engine and the
// heart simulator. Nothing a sink does with it feeds back into the run.
type Event struct {
	Kind    EventKind
	Chamber Chamber
	Tick    int64      // global tick at which the event happened
	Time    int64      // logged time; usually Tick*timeScale, see HeartSimulator.Tick for the exception
	Pulse   PulseParam // zero for intrinsic beats
}

// String renders the event as a human-readable log line.
func (e Event) String() string {
	switch e.Kind {
	case EventPacedPulse:
		return fmt.Sprintf("@%dms Pacemaker pulse in %s chamber.", e.Time, e.Chamber)
	case EventTriggeredPulse:
		return fmt.Sprintf("@%dms Supporting pacemaker pulse in %s chamber.", e.Time, e.Chamber)
	case EventIntrinsicBeat:
		return fmt.Sprintf("@%dms %s intrinsic beat.", e.Time, e.Chamber)
	default:
		return fmt.Sprintf("@%dms unknown event %q in %s chamber.", e.Time, e.Kind, e.Chamber)
	}
}

// IsPulse reports whether the event was delivered by the pacer.
func (e Event) IsPulse() bool {
	return e.Kind == EventPacedPulse || e.Kind == EventTriggeredPulse
}

// EventSink receives notifications. Notify has no return value and must not
// fail from the caller's point of view.
type EventSink interface {
	Notify(Event)
}

// LogSink writes every notification to logrus.
type LogSink struct{}

// Notify logs the event at info level and the pulse shape at debug level.
func (LogSink) Notify(e Event) {
	logrus.Info(e.String())
	if e.IsPulse() {
		logrus.Debugf(" => Pulse: amplitude='%g', width='%g'.", e.Pulse.Amplitude, e.Pulse.Width)
	}
}

// MultiSink fans a notification out to every sink in order.
type MultiSink []EventSink

// Notify forwards e to all sinks.
func (ms MultiSink) Notify(e Event) {
	for _, s := range ms {
		s.Notify(e)
	}
}

// discardSink drops everything.
type discardSink struct{}

func (discardSink) Notify(Event) {}
