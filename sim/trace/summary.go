package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	AtrialPulses         int     `json:"atrial_pulses"`
	AtrialPaced          int     `json:"atrial_paced"`
	AtrialIntrinsic      int     `json:"atrial_intrinsic"`
	VentricularPulses    int     `json:"ventricular_pulses"`
	VentricularPaced     int     `json:"ventricular_paced"`
	VentricularTriggered int     `json:"ventricular_triggered"`
	VentricularIntrinsic int     `json:"ventricular_intrinsic"`
	MeanAtrialInterval   float64 `json:"mean_atrial_interval"`
	MaxAtrialInterval    int64   `json:"max_atrial_interval"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	lastAtrial := int64(-1)
	intervalSum := int64(0)
	intervals := 0
	for _, r := range st.Ticks {
		if r.HeartAtrial {
			summary.AtrialIntrinsic++
		}
		if r.PacerAtrial {
			summary.AtrialPaced++
		}
		if r.Atrial() {
			summary.AtrialPulses++
			if lastAtrial >= 0 {
				d := r.Tick - lastAtrial
				intervalSum += d
				intervals++
				if d > summary.MaxAtrialInterval {
					summary.MaxAtrialInterval = d
				}
			}
			lastAtrial = r.Tick
		}

		if r.HeartVentricular {
			summary.VentricularIntrinsic++
		}
		switch {
		case r.PacerVentricular && r.PacerTriggered:
			summary.VentricularTriggered++
		case r.PacerVentricular:
			summary.VentricularPaced++
		}
		if r.Ventricular() {
			summary.VentricularPulses++
		}
	}

	if intervals > 0 {
		summary.MeanAtrialInterval = float64(intervalSum) / float64(intervals)
	}
	return summary
}
