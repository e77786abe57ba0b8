package evaluator

import (
	"os"
	"strings"

	"github.com/arclight-labs/dsbeam/design"
)

// Mode selects how repeated application of the same rule category biases
// subsequent structural evaluation.
type Mode int

const (
	// Repulsive pushes future evaluations away from an over-used
	// category; the default.
	Repulsive Mode = iota
	// Contractive pulls the structural score toward the running mean as
	// a category repeats, damping oscillation.
	Contractive
	// Disabled applies no bias at all.
	Disabled
)

// ModeFromEnv reads PHASE6_MEMORY_MODE and maps it to a Mode, defaulting to
// Repulsive ("v6.1") when unset.
func ModeFromEnv() Mode {
	return modeFromString(os.Getenv("PHASE6_MEMORY_MODE"))
}

func modeFromString(v string) Mode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "v6.1":
		return Repulsive
	case "off", "disabled", "a":
		return Disabled
	case "v6.0", "v6_0", "contractive", "b":
		return Contractive
	default:
		return Repulsive
	}
}

// Telemetry is the drained, reset-on-read interference bias summary.
type Telemetry struct {
	Evaluations int
	Adjustments int
	NetBias     float64
}

// Memory tracks per-category application counts and derives a structural
// bias from them under the configured Mode.
type Memory struct {
	mode   Mode
	counts map[design.NodeCategory]int
	tele   Telemetry
}

// NewMemory returns a Memory in the given mode.
func NewMemory(mode Mode) *Memory {
	return &Memory{mode: mode, counts: make(map[design.NodeCategory]int)}
}

// Interfere records one evaluation of category and returns the bias to
// apply to the structural score, in [-0.2, 0.2].
func (m *Memory) Interfere(category design.NodeCategory) float64 {
	m.tele.Evaluations++
	m.counts[category]++
	n := m.counts[category]

	var bias float64
	switch m.mode {
	case Disabled:
		bias = 0
	case Contractive:
		// Shrinks toward zero as repeats accumulate: 1/n decay.
		bias = -0.2 / float64(n)
	default: // Repulsive
		// Grows in magnitude (away from the category) with repeats,
		// capped below.
		bias = -0.04 * float64(n-1)
	}
	if bias > 0.2 {
		bias = 0.2
	}
	if bias < -0.2 {
		bias = -0.2
	}
	if bias != 0 {
		m.tele.Adjustments++
		m.tele.NetBias += bias
	}
	return bias
}

// TakeTelemetry drains and resets the accumulated telemetry.
func (m *Memory) TakeTelemetry() Telemetry {
	t := m.tele
	m.tele = Telemetry{}
	return t
}
