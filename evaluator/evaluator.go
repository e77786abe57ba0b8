package evaluator

import (
	"math/rand"

	"github.com/arclight-labs/dsbeam/design"
	"github.com/arclight-labs/dsbeam/idutil"
	"github.com/arclight-labs/dsbeam/objective"
)

// Evaluator is the pluggable structural evaluation step: it scores a
// design state's four objective dimensions, folding in interference-memory
// bias and a seed-derived structural contribution. The seed-derived part
// depends only on the (seed, state id) pair, whatever order states are
// visited in; the interference bias depends on how many times the category
// has been evaluated before, so outside Disabled mode the result also
// depends on the evaluation history.
type Evaluator struct {
	guard  Guard
	memory *Memory
	seed   int64
}

// New returns an Evaluator seeded for one search run.
func New(seed int64, mode Mode) *Evaluator {
	return &Evaluator{memory: NewMemory(mode), seed: seed}
}

// Evaluate scores state under rule's node category, applying interference
// bias and clamping the result. It is safe to call concurrently; a panic
// inside evaluation poisons the evaluator for all future calls — fail fast,
// by design.
func (e *Evaluator) Evaluate(state *design.State, category design.NodeCategory) objective.Vector {
	var out objective.Vector
	e.guard.Do(func() {
		out = e.evaluateLocked(state, category)
	})
	return out
}

func (e *Evaluator) evaluateLocked(state *design.State, category design.NodeCategory) objective.Vector {
	r := stateRand(e.seed, state.ID)
	bias := e.memory.Interfere(category)

	depth := design.HistoryDepth(state.ProfileSnapshot)
	nodes := state.Graph.NodeCount()
	avgEdges := averageEdges(state.Graph.Snapshot())

	structScore := clamp01(0.5 + bias + 0.05*r.Float64() - 0.01*float64(depth))
	fieldScore := clamp01(0.4 + 0.2*r.Float64())
	riskScore := clamp01(0.3 + 0.1*r.Float64() + 0.005*float64(nodes))
	shapeScore := clamp01(0.5 + 0.1*(r.Float64()-0.5) - 0.02*avgEdges)

	return objective.Vector{
		Struct: structScore,
		Field:  fieldScore,
		Risk:   riskScore,
		Shape:  shapeScore,
	}.Clamped()
}

// TakeMemoryTelemetry drains the evaluator's interference-memory telemetry.
func (e *Evaluator) TakeMemoryTelemetry() Telemetry {
	return e.memory.TakeTelemetry()
}

// averageEdges is the mean edge count across a structural graph snapshot, a
// rough measure of how entangled the composed rule lineage has become: a
// design that keeps chaining rules into a dense web of structural edges is
// penalized slightly on shape relative to one that stays loosely coupled.
func averageEdges(nodes []design.NodeSummary) float64 {
	if len(nodes) == 0 {
		return 0
	}
	var total int
	for _, n := range nodes {
		total += n.Edges
	}
	return float64(total) / float64(len(nodes))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// stateRand returns a deterministic, per-(seed, state id) random source, so
// evaluation is reproducible for a fixed seed regardless of call order.
func stateRand(seed int64, id idutil.StateID) *rand.Rand {
	mixed := idutil.FNV1a64(append(append([]byte(nil), id[:]...), int64Bytes(seed)...))
	return rand.New(rand.NewSource(int64(mixed)))
}

func int64Bytes(v int64) []byte {
	b := make([]byte, 8)
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * (7 - i)))
	}
	return b
}
