// Package trace provides per-tick decision recording for pacing runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TickRecord captures every source of activity on a tick where something fired.
// Elapsed counters are the values the heart and the engine saw, before reset.
type TickRecord struct {
	Tick               int64 `json:"tick"`
	ElapsedAtrial      int64 `json:"elapsed_atrial"`
	ElapsedVentricular int64 `json:"elapsed_ventricular"`
	HeartAtrial        bool  `json:"heart_atrial"`
	HeartVentricular   bool  `json:"heart_ventricular"`
	PacerAtrial        bool  `json:"pacer_atrial"`
	PacerVentricular   bool  `json:"pacer_ventricular"`
	PacerTriggered     bool  `json:"pacer_triggered"` // ventricular pacer pulse fired by a sensed beat, not the escape interval
}

// Atrial reports whether the atrium was pulsed on this tick by either source.
func (r TickRecord) Atrial() bool {
	return r.HeartAtrial || r.PacerAtrial
}

// Ventricular reports whether the ventricle was pulsed on this tick by either source.
func (r TickRecord) Ventricular() bool {
	return r.HeartVentricular || r.PacerVentricular
}
