// Package mqtt publishes pacing notifications to an MQTT broker.
package mqtt

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/pacing-sim/pacing-sim/sim"
)

// DefaultTopic is the MQTT topic for pacing events.
const DefaultTopic = "pacing-sim/events"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a pacing event to the broker.
	Publish(event sim.Event) error

	// Close disconnects from the broker.
	Close() error
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Pacer PacerPayload `json:"pacer"`
}

// PacerPayload contains the event details.
type PacerPayload struct {
	Tick      int64   `json:"tick"`
	TimeMs    int64   `json:"time_ms"`
	Event     string  `json:"event"`
	Chamber   string  `json:"chamber"`
	Amplitude float64 `json:"amplitude,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Message   string  `json:"message"`
}

// FormatPayload creates the JSON payload for a pacing event.
func FormatPayload(event sim.Event) ([]byte, error) {
	payload := Payload{
		Pacer: PacerPayload{
			Tick:    event.Tick,
			TimeMs:  event.Time,
			Event:   string(event.Kind),
			Chamber: string(event.Chamber),
			Message: event.String(),
		},
	}
	if event.IsPulse() {
		payload.Pacer.Amplitude = event.Pulse.Amplitude
		payload.Pacer.Width = event.Pulse.Width
	}
	return json.Marshal(payload)
}

// Sink adapts a Publisher to sim.EventSink. Publish failures are logged and
// never reach the simulation.
type Sink struct {
	Publisher Publisher
	failures  int
}

// NewSink wraps p.
func NewSink(p Publisher) *Sink {
	return &Sink{Publisher: p}
}

// Notify publishes e, logging any transport error.
func (s *Sink) Notify(e sim.Event) {
	if err := s.Publisher.Publish(e); err != nil {
		s.failures++
		logrus.Warnf("mqtt: failed to publish %q: %v", e.String(), err)
	}
}

// Failures returns how many publishes have failed so far.
func (s *Sink) Failures() int {
	return s.failures
}
