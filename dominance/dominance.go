// Package dominance implements temperature-smoothed soft-Pareto scoring and
// the layered selection score used to rank and truncate a beam-search
// frontier deterministically.
package dominance

import (
	"math"
	"sort"

	"github.com/arclight-labs/dsbeam/objective"
)

// Selection score weights and constants, fixed across the engine.
const (
	WeightQuality    = 0.60
	WeightPressure   = 0.25
	WeightStability  = 0.15
	PressureLambda   = 1.0
	StabilityEpsilon = 0.05
	// SoftParetoTemperature controls how sharply the soft-dominance margin
	// saturates toward 0/1; lower values approach hard Pareto dominance.
	SoftParetoTemperature = 0.25
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SoftDominanceScores returns, for each vector in vs, a soft-Pareto
// dominance score in (0, 1): the mean, over every other candidate j, of a
// sigmoid applied to the total margin by which vs[i] improves on vs[j]
// across all four objective dimensions. A candidate that weakly dominates
// every peer (every dimension at least as good, at least one strictly
// better) scores strictly above one that does not, the score is invariant
// to adding the same constant to every dimension of every candidate (the
// margins it is built from are differences), and it is a pure function of
// its inputs. distanceCalls counts the pairwise margin computations
// performed, for trace instrumentation.
func SoftDominanceScores(vs []objective.Vector, temperature float64) (scores []float64, distanceCalls int) {
	n := len(vs)
	scores = make([]float64, n)
	if n <= 1 {
		for i := range scores {
			scores[i] = 0.5
		}
		return scores, 0
	}
	if temperature < 1e-12 {
		temperature = 1e-12
	}
	for i := 0; i < n; i++ {
		var total float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			margin := objectiveMargin(vs[i], vs[j])
			total += sigmoid(margin / temperature)
			distanceCalls++
		}
		scores[i] = total / float64(n-1)
	}
	return scores, distanceCalls
}

// objectiveMargin is the signed sum, across all four dimensions, by which a
// improves on b (positive means a tends to dominate b).
func objectiveMargin(a, b objective.Vector) float64 {
	return (a.Struct - b.Struct) + (a.Field - b.Field) + (a.Risk - b.Risk) + (a.Shape - b.Shape)
}

// Quality is the clamped scalar score of an objective vector.
func Quality(v objective.Vector) float64 {
	return clamp01(objective.ScalarScore(v))
}

// Pressure converts an integrated local/global objective-space distance
// into a [0, 1] selection pressure: closer candidates (small distance)
// score near 1, distant ones decay exponentially toward 0.
func Pressure(integratedDistance float64) float64 {
	return clamp01(math.Exp(-PressureLambda * integratedDistance))
}

// StableFlag reports 1.0 when the local and global objective-space
// distances agree within eps (the candidate's position is stable across
// both views), 0.0 otherwise.
func StableFlag(localDistance, globalDistance, eps float64) float64 {
	if math.Abs(localDistance-globalDistance) <= eps {
		return 1.0
	}
	return 0.0
}

// SelectionScore blends quality, pressure and stability into the layered
// score soft-front ranking breaks ties with.
func SelectionScore(quality, pressure, stability float64) float64 {
	return WeightQuality*quality + WeightPressure*pressure + WeightStability*stability
}

// Centroid returns the component-wise mean objective vector over vs. An
// empty input returns the zero Vector.
func Centroid(vs []objective.Vector) objective.Vector {
	var c objective.Vector
	n := len(vs)
	if n == 0 {
		return c
	}
	for _, v := range vs {
		c.Struct += v.Struct
		c.Field += v.Field
		c.Risk += v.Risk
		c.Shape += v.Shape
	}
	f := float64(n)
	c.Struct /= f
	c.Field /= f
	c.Risk /= f
	c.Shape /= f
	return c
}

// ObjectiveDistance is the Euclidean distance between two objective vectors.
func ObjectiveDistance(a, b objective.Vector) float64 {
	ds := a.Struct - b.Struct
	df := a.Field - b.Field
	dr := a.Risk - b.Risk
	dh := a.Shape - b.Shape
	return math.Sqrt(ds*ds + df*df + dr*dr + dh*dh)
}

// SelectionScoresForObjs computes the §4.3 selection score for every vector
// in vs directly in objective space: local is the minimum L2 distance to
// any other candidate (0 when n<=1), global is the L2 distance to the
// centroid of every candidate, and integrated = 0.5*local + 0.5*global.
func SelectionScoresForObjs(vs []objective.Vector) []float64 {
	n := len(vs)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	centroid := Centroid(vs)
	for i := 0; i < n; i++ {
		var local float64
		if n > 1 {
			local = math.Inf(1)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if d := ObjectiveDistance(vs[i], vs[j]); d < local {
					local = d
				}
			}
			if math.IsInf(local, 1) {
				local = 0
			}
		}
		global := ObjectiveDistance(vs[i], centroid)
		integrated := 0.5*local + 0.5*global
		quality := Quality(vs[i])
		pressure := Pressure(integrated)
		stability := StableFlag(local, global, StabilityEpsilon)
		out[i] = SelectionScore(quality, pressure, stability)
	}
	return out
}

// Candidate bundles everything SoftFrontRank needs to rank and deduplicate
// one member of a frontier.
type Candidate struct {
	ID             [16]byte
	Objective      objective.Vector
	SelectionScore float64
}

// SoftFrontRank deduplicates candidates by ID (keeping the first occurrence
// in input order), computes soft-dominance scores over the deduplicated
// set, and returns them sorted by (dominance score desc, selection score
// desc, id asc) — a total, deterministic order. distanceCalls is the number
// of pairwise margin computations SoftDominanceScores performed.
func SoftFrontRank(candidates []Candidate, temperature float64) (ranked []Candidate, distanceCalls int) {
	deduped := make([]Candidate, 0, len(candidates))
	seen := make(map[[16]byte]bool, len(candidates))
	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		deduped = append(deduped, c)
	}

	objs := make([]objective.Vector, len(deduped))
	for i, c := range deduped {
		objs[i] = c.Objective
	}
	scores, calls := SoftDominanceScores(objs, temperature)

	type scored struct {
		candidate Candidate
		score     float64
	}
	rows := make([]scored, len(deduped))
	for i, c := range deduped {
		rows[i] = scored{candidate: c, score: scores[i]}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		if rows[i].candidate.SelectionScore != rows[j].candidate.SelectionScore {
			return rows[i].candidate.SelectionScore > rows[j].candidate.SelectionScore
		}
		return lessID(rows[i].candidate.ID, rows[j].candidate.ID)
	})

	ranked = make([]Candidate, len(rows))
	for i, row := range rows {
		ranked[i] = row.candidate
	}
	return ranked, calls
}

func lessID(a, b [16]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
