package sim

import (
	"fmt"
	"strings"
)

// Mode is the pacing mode of a run. The set is closed: every switch over
// Mode handles all three values.
type Mode int

const (
	// ModeOff disables pacing; only the heart produces events.
	ModeOff Mode = iota
	// ModeAoo paces the atrium asynchronously, ignoring intrinsic activity.
	ModeAoo
	// ModeVvt paces the ventricle on demand and on sensed beats outside the VRP.
	ModeVvt
)

// validModes maps accepted mode names.
var validModes = map[string]Mode{
	"off": ModeOff,
	"aoo": ModeAoo,
	"vvt": ModeVvt,
}

// String returns the lower-case mode name ("off", "aoo", "vvt").
func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeAoo:
		return "aoo"
	case ModeVvt:
		return "vvt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsValidMode returns true if name is a recognized mode (case-insensitive).
func IsValidMode(name string) bool {
	_, ok := validModes[strings.ToLower(name)]
	return ok
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	m, ok := validModes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ModeOff, fmt.Errorf("unknown mode %q; valid: off, aoo, vvt", name)
	}
	return m, nil
}
