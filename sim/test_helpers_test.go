package sim

// recordingSink captures notifications for assertions.
type recordingSink struct {
	events []Event
}

func (r *recordingSink) Notify(e Event) {
	r.events = append(r.events, e)
}

// filter returns the recorded events matching kind and chamber.
func (r *recordingSink) filter(kind EventKind, chamber Chamber) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind && e.Chamber == chamber {
			out = append(out, e)
		}
	}
	return out
}

// newTestSimulator builds a reference simulator with a recording sink.
func newTestSimulator(mode Mode) (*Simulator, *recordingSink) {
	sink := &recordingSink{}
	cfg := DefaultSimConfig(mode)
	cfg.TraceEnabled = true
	return NewSimulator(cfg, NoopClock{}, sink), sink
}
