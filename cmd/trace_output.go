package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pacing-sim/pacing-sim/sim/trace"
)

// traceFile is the JSON document written by --trace-output.
type traceFile struct {
	Summary *trace.TraceSummary    `json:"summary"`
	Trace   *trace.SimulationTrace `json:"trace"`
}

// writeTrace serializes st and its summary to path.
func writeTrace(path string, st *trace.SimulationTrace) error {
	data, err := json.MarshalIndent(traceFile{Summary: trace.Summarize(st), Trace: st}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write trace %s: %w", path, err)
	}
	return nil
}
