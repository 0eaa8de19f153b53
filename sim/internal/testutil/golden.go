// Package testutil provides shared test infrastructure for the pacing simulator.
// It holds the golden run dataset types and assertion helpers used by sim/
// test packages. It does not import sim/, so in-package tests can use it.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_runs.json.
type GoldenDataset struct {
	Runs []GoldenRun `json:"runs"`
}

// GoldenRun represents a single reference run and its expected outcome.
type GoldenRun struct {
	Name                      string        `json:"name"`
	Mode                      string        `json:"mode"`
	Pulses                    int           `json:"pulses"`
	Seed                      uint64        `json:"seed"`
	InitialVentricularElapsed int64         `json:"initial_ventricular_elapsed"`
	Metrics                   GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected counters of a golden run.
// Wall time is not deterministic and is not recorded.
type GoldenMetrics struct {
	Ticks                int64   `json:"ticks"`
	LastAtrialTick       int64   `json:"last_atrial_tick"`
	AtrialPaced          int     `json:"atrial_paced"`
	AtrialIntrinsic      int     `json:"atrial_intrinsic"`
	VentricularPaced     int     `json:"ventricular_paced"`
	VentricularTriggered int     `json:"ventricular_triggered"`
	VentricularIntrinsic int     `json:"ventricular_intrinsic"`
	RandomDraws          int64   `json:"random_draws"`
	MeanAtrialInterval   float64 `json:"mean_atrial_interval"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_runs.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
