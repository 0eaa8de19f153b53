// Tracks run-wide pacing counters such as paced vs. intrinsic pulses per chamber.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Metrics aggregates statistics about a run for final reporting.
type Metrics struct {
	Mode                 string `json:"mode"`
	Ticks                int64  `json:"ticks"`
	AtrialPulses         int    `json:"atrial_pulses"`
	AtrialPaced          int    `json:"atrial_paced"`
	AtrialIntrinsic      int    `json:"atrial_intrinsic"`
	VentricularPulses    int    `json:"ventricular_pulses"`
	VentricularPaced     int    `json:"ventricular_paced"`    // escape pulses at the LRL interval
	VentricularTriggered int    `json:"ventricular_triggered"` // supporting pulses on sensed beats
	VentricularIntrinsic int    `json:"ventricular_intrinsic"`
	RandomDraws          int64  `json:"random_draws"`
	LastAtrialTick       int64  `json:"last_atrial_tick"` // -1 if the atrium never fired

	WallTime time.Duration `json:"-"`
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{LastAtrialTick: -1}
}

// Print writes the aggregated metrics to w as a header followed by indented JSON.
func (m *Metrics) Print(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if _, err := fmt.Fprintln(w, "=== Simulation Metrics ==="); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Simulation duration  : %v\n", m.WallTime)
	return err
}
