package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace_ReturnsZeroSummary(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, &TraceSummary{}, summary)
}

func TestSummarize_EmptyTrace(t *testing.T) {
	summary := Summarize(NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions}))
	assert.Equal(t, 0, summary.AtrialPulses)
	assert.Equal(t, 0.0, summary.MeanAtrialInterval)
}

func TestSummarize_CountsSourcesAndIntervals(t *testing.T) {
	// GIVEN an aoo-like trace: paced at 100, heart at 199, paced at 299
	// and a triggered ventricular pulse that coincides with a sensed beat
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordTick(TickRecord{Tick: 100, PacerAtrial: true})
	st.RecordTick(TickRecord{Tick: 150, HeartVentricular: true, PacerVentricular: true, PacerTriggered: true})
	st.RecordTick(TickRecord{Tick: 199, HeartAtrial: true})
	st.RecordTick(TickRecord{Tick: 299, PacerAtrial: true})

	// WHEN summarized
	summary := Summarize(st)

	// THEN sources and intervals are aggregated
	assert.Equal(t, 3, summary.AtrialPulses)
	assert.Equal(t, 2, summary.AtrialPaced)
	assert.Equal(t, 1, summary.AtrialIntrinsic)
	assert.Equal(t, 1, summary.VentricularPulses, "coinciding sources count as one pulse")
	assert.Equal(t, 0, summary.VentricularPaced)
	assert.Equal(t, 1, summary.VentricularTriggered)
	assert.Equal(t, 1, summary.VentricularIntrinsic)
	assert.InDelta(t, 99.5, summary.MeanAtrialInterval, 1e-9)
	assert.Equal(t, int64(100), summary.MaxAtrialInterval)
}

func TestSummarize_SplitsEscapeFromTriggeredVentricularPulses(t *testing.T) {
	// GIVEN one escape pulse and two pulses triggered by sensed beats
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions, Mode: "vvt"})
	st.RecordTick(TickRecord{Tick: 50, ElapsedVentricular: 100, PacerVentricular: true})
	st.RecordTick(TickRecord{Tick: 120, ElapsedVentricular: 70, HeartVentricular: true, PacerVentricular: true, PacerTriggered: true})
	st.RecordTick(TickRecord{Tick: 190, ElapsedVentricular: 70, HeartVentricular: true, PacerVentricular: true, PacerTriggered: true})

	// WHEN summarized
	summary := Summarize(st)

	// THEN escape and triggered pulses are counted apart
	assert.Equal(t, 1, summary.VentricularPaced)
	assert.Equal(t, 2, summary.VentricularTriggered)
	assert.Equal(t, 2, summary.VentricularIntrinsic)
	assert.Equal(t, 3, summary.VentricularPulses)
}
