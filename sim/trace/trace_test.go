package trace

import (
	"testing"
)

func TestSimulationTrace_RecordTick_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions, Mode: "aoo"})

	// WHEN a tick record is recorded
	st.RecordTick(TickRecord{Tick: 100, ElapsedAtrial: 100, PacerAtrial: true})

	// THEN the trace contains one record with correct data
	if len(st.Ticks) != 1 {
		t.Fatalf("expected 1 record, got %d", len(st.Ticks))
	}
	if st.Ticks[0].Tick != 100 {
		t.Errorf("expected tick 100, got %d", st.Ticks[0].Tick)
	}
	if !st.Ticks[0].Atrial() {
		t.Error("expected atrial pulse")
	}
	if st.Ticks[0].Ventricular() {
		t.Error("expected no ventricular pulse")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	st.RecordTick(TickRecord{Tick: 49, HeartVentricular: true})
	st.RecordTick(TickRecord{Tick: 99, HeartAtrial: true})
	st.RecordTick(TickRecord{Tick: 148, HeartVentricular: true})

	if len(st.Ticks) != 3 {
		t.Fatalf("expected 3 records, got %d", len(st.Ticks))
	}
	for i, want := range []int64{49, 99, 148} {
		if st.Ticks[i].Tick != want {
			t.Errorf("record %d: tick %d, want %d", i, st.Ticks[i].Tick, want)
		}
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must not be enabled")
	}
	if NewSimulationTrace(TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("level none must not be enabled")
	}
	if !NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("level decisions must be enabled")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true}, // empty defaults to none
		{"detailed", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
