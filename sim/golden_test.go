package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacing-sim/pacing-sim/sim/internal/testutil"
	"github.com/pacing-sim/pacing-sim/sim/trace"
)

// TestSimulator_GoldenRuns replays every run in testdata/golden_runs.json and
// compares the counters exactly. Any change to the decision rules, the random
// table or the wrap rule shows up here.
func TestSimulator_GoldenRuns(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Runs)

	for _, run := range dataset.Runs {
		t.Run(run.Name, func(t *testing.T) {
			mode, err := ParseMode(run.Mode)
			require.NoError(t, err)

			s := NewSimulator(SimConfig{
				Mode:                      mode,
				Param:                     DefaultParam,
				Seed:                      run.Seed,
				InitialVentricularElapsed: run.InitialVentricularElapsed,
				TraceEnabled:              true,
			}, NoopClock{}, nil)
			s.Run(run.Pulses)

			want, got := run.Metrics, s.Metrics
			assert.Equal(t, want.Ticks, got.Ticks, "ticks")
			assert.Equal(t, want.LastAtrialTick, got.LastAtrialTick, "last atrial tick")
			assert.Equal(t, want.AtrialPaced, got.AtrialPaced, "atrial paced")
			assert.Equal(t, want.AtrialIntrinsic, got.AtrialIntrinsic, "atrial intrinsic")
			assert.Equal(t, want.VentricularPaced, got.VentricularPaced, "ventricular paced")
			assert.Equal(t, want.VentricularTriggered, got.VentricularTriggered, "ventricular triggered")
			assert.Equal(t, want.VentricularIntrinsic, got.VentricularIntrinsic, "ventricular intrinsic")
			assert.Equal(t, want.RandomDraws, got.RandomDraws, "random draws")
			assert.Equal(t, run.Pulses, got.AtrialPulses)

			summary := trace.Summarize(s.Trace)
			testutil.AssertFloat64Equal(t, "mean atrial interval", want.MeanAtrialInterval, summary.MeanAtrialInterval, 1e-9)
		})
	}
}
