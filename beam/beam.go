// Package beam implements the objective-space beam search: at each depth
// it expands every frontier state via its applicable rules, evaluates the
// resulting candidates, normalizes and soft-dominance ranks them, and
// truncates to a fixed beam width.
package beam

import (
	"github.com/arclight-labs/dsbeam/design"
	"github.com/arclight-labs/dsbeam/dominance"
	"github.com/arclight-labs/dsbeam/evaluator"
	"github.com/arclight-labs/dsbeam/field"
	"github.com/arclight-labs/dsbeam/idutil"
	"github.com/arclight-labs/dsbeam/norm"
	"github.com/arclight-labs/dsbeam/objective"
)

// Mode controls how much of the search's depth-by-depth history is kept.
type Mode int

const (
	// Auto retains only the final depth front.
	Auto Mode = iota
	// Manual retains every depth's front.
	Manual
)

// Config parameterizes one beam search run.
type Config struct {
	MaxDepth  int
	BeamWidth int
	Seed      int64
	NormAlpha float64
	Mode      Mode
	// InitialLambda seeds the global/local target-field blend for depth 0.
	InitialLambda float32
}

// DepthFront records the frontier's state ids at one depth.
type DepthFront struct {
	Depth    int
	StateIDs []idutil.StateID
}

// Result is the outcome of a beam search run.
type Result struct {
	FinalFrontier []*design.State
	DepthFronts   []DepthFront
}

// StepStats accumulates counters a trace run reports per depth.
type StepStats struct {
	DistanceCalls      int
	NNDistanceCalls    int
	CollapseFlag       bool
	PreTruncationCount int
}

// Search runs the beam search from initial to cfg.MaxDepth, using eval to
// score candidates and engine to project rule categories into field space.
func Search(initial *design.State, cfg Config, eval *evaluator.Evaluator, engine field.Engine) (Result, StepStats) {
	if cfg.BeamWidth == 0 || cfg.MaxDepth == 0 {
		return Result{
			FinalFrontier: []*design.State{initial},
			DepthFronts: []DepthFront{{
				Depth:    0,
				StateIDs: []idutil.StateID{initial.ID},
			}},
		}, StepStats{}
	}

	frontier := []*design.State{initial}
	var depthFronts []DepthFront
	var stats StepStats
	lambda := cfg.InitialLambda

	for depth := 0; depth < cfg.MaxDepth; depth++ {
		next, front, stepStats, ok := Step(frontier, depth, cfg.BeamWidth, cfg.NormAlpha, lambda, eval, engine)
		if !ok {
			break
		}
		stats.DistanceCalls += stepStats.DistanceCalls
		stats.NNDistanceCalls += stepStats.NNDistanceCalls
		stats.CollapseFlag = stepStats.CollapseFlag

		if cfg.Mode == Manual {
			depthFronts = append(depthFronts, front)
		} else {
			if len(depthFronts) == 0 {
				depthFronts = append(depthFronts, front)
			} else {
				depthFronts[0] = front
			}
		}

		frontier = next
	}

	return Result{FinalFrontier: frontier, DepthFronts: depthFronts}, stats
}

// Step expands frontier once, evaluates and ranks the resulting
// candidates, and truncates to beamWidth. depth is the zero-based depth
// being produced (the returned front's Depth is depth+1). lambda is the
// global/local target-field blend weight to use for this step; callers
// that adapt λ between depths (package trace) pass a fresh value each
// call. ok is false when the frontier has no applicable rules left to
// expand.
func Step(
	frontier []*design.State,
	depth int,
	beamWidth int,
	normAlpha float64,
	lambda float32,
	eval *evaluator.Evaluator,
	engine field.Engine,
) (next []*design.State, front DepthFront, stats StepStats, ok bool) {
	candidates, candidateRules := expand(frontier)
	if len(candidates) == 0 {
		return nil, DepthFront{}, StepStats{}, false
	}

	objs := make([]objective.Vector, len(candidates))
	for i, c := range candidates {
		objs[i] = eval.Evaluate(c, design.CategoryOf(candidateRules[i].Category))
	}
	normalizeBatch(objs, normAlpha)

	// The diversity-modulated target field is computed and adjusted per
	// depth, but neither the adjusted field nor its Adjustment is returned
	// or used: per §4.3 the selection score is computed directly in
	// objective space below, not from field-space distances.
	positions := make([]field.Vector, len(candidates))
	for i := range candidates {
		positions[i] = engine.BasisFor(design.FieldCategory(design.CategoryOf(candidateRules[i].Category)))
	}
	diversity := field.MeanPairwiseDistance(positions)
	tf := buildDepthTargetField(engine, candidateRules, lambda)
	_, _ = field.ApplyDiversityPressure(tf, tf.Global, tf.Local, lambda, diversity)
	stats.NNDistanceCalls += len(positions) * (len(positions) - 1) / 2

	selScores := dominance.SelectionScoresForObjs(objs)
	domCandidates := make([]dominance.Candidate, len(candidates))
	for i, c := range candidates {
		domCandidates[i] = dominance.Candidate{ID: c.ID, Objective: objs[i], SelectionScore: selScores[i]}
	}

	ranked, calls := dominance.SoftFrontRank(domCandidates, dominance.SoftParetoTemperature)
	stats.DistanceCalls += calls
	stats.PreTruncationCount = len(ranked)

	width := beamWidth
	if width > len(ranked) {
		width = len(ranked)
	}
	rankedIDs := make(map[idutil.StateID]*design.State, len(candidates))
	for _, c := range candidates {
		rankedIDs[c.ID] = c
	}

	next = make([]*design.State, 0, width)
	ids := make([]idutil.StateID, 0, width)
	for i := 0; i < width; i++ {
		st := rankedIDs[ranked[i].ID]
		next = append(next, st)
		ids = append(ids, st.ID)
	}

	stats.CollapseFlag = len(next) <= 1 && stats.PreTruncationCount > 1
	front = DepthFront{Depth: depth + 1, StateIDs: ids}
	return next, front, stats, true
}

// expand applies every applicable rule to every state in the frontier,
// returning the derived candidates alongside the rule that produced each.
func expand(frontier []*design.State) ([]*design.State, []design.Rule) {
	var candidates []*design.State
	var rules []design.Rule
	for _, state := range frontier {
		for i, rule := range design.ApplicableRules(state) {
			candidates = append(candidates, design.ApplyAtomic(state, rule, i))
			rules = append(rules, rule)
		}
	}
	return candidates, rules
}

// normalizeBatch rescales each of the four objective dimensions across
// candidates independently, using normAlpha as the degenerate-range
// fallback value for norm.MinmaxScale.
func normalizeBatch(objs []objective.Vector, normAlpha float64) {
	n := len(objs)
	dims := make([][]float64, 4)
	for d := range dims {
		dims[d] = make([]float64, n)
	}
	for i, v := range objs {
		dims[0][i], dims[1][i], dims[2][i], dims[3][i] = v.Struct, v.Field, v.Risk, v.Shape
	}
	for d := range dims {
		dims[d] = norm.MinmaxScale(norm.RobustStandardize(dims[d]), normAlpha)
	}
	for i := range objs {
		objs[i] = objective.Vector{
			Struct: dims[0][i],
			Field:  dims[1][i],
			Risk:   dims[2][i],
			Shape:  dims[3][i],
		}
	}
}

// buildDepthTargetField composes the global field from every catalog rule's
// category and the local field from this depth's candidate rule set, then
// blends by lambda.
func buildDepthTargetField(engine field.Engine, candidateRules []design.Rule, lambda float32) field.TargetField {
	globalCats := make([]field.Category, 0, len(design.Catalog))
	for _, r := range design.Catalog {
		globalCats = append(globalCats, design.FieldCategory(design.CategoryOf(r.Category)))
	}
	localCats := make([]field.Category, 0, len(candidateRules))
	for _, r := range candidateRules {
		localCats = append(localCats, design.FieldCategory(design.CategoryOf(r.Category)))
	}
	return field.BuildTargetField(engine, globalCats, localCats, lambda)
}
