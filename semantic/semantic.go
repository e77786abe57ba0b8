// Package semantic re-ranks a finished beam-search frontier by a
// five-component coherence score derived from each state's causal and
// requirement structure, combined with its Pareto rank and scalar score
// into one deterministic order.
package semantic

import (
	"math"
	"sort"
)

// RequirementKind is one of the five coverage dimensions coherence rewards
// a semantic unit for touching.
type RequirementKind int

const (
	Performance RequirementKind = iota
	Memory
	Security
	Reliability
	NoCloud
	requirementKindCount
)

// DerivedRequirement is one requirement a semantic unit satisfies, with a
// strength in [0, 1].
type DerivedRequirement struct {
	Kind     RequirementKind
	Strength float64
}

// CausalEdge is one directed causal link between concepts, signed by
// polarity (negative weight marks a contradictory/undermining link).
type CausalEdge struct {
	From, To uint64
	Weight   float64
}

// Unit is the semantic structure backing one ranked objective case:
// its derived requirements and causal edges.
type Unit struct {
	ID                 uint64
	DerivedRequirements []DerivedRequirement
	CausalLinks        []CausalEdge
	StabilityScore     float64
}

// Coherence is the five-component coherence breakdown for one semantic
// unit, plus its aggregate TotalScore.
type Coherence struct {
	Dependency    float64
	Abstraction   float64
	Polarity      float64
	Contradiction float64
	Coverage      float64
	TotalScore    float64
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ComputeCoherence derives the coherence breakdown for u.
func ComputeCoherence(u Unit) Coherence {
	edgeCount := len(u.CausalLinks)
	negativeEdges := 0
	for _, e := range u.CausalLinks {
		if e.Weight < 0 {
			negativeEdges++
		}
	}

	var dependency, polarity, contradiction float64
	if edgeCount == 0 {
		dependency = 0.5
		polarity = 1.0
		contradiction = 1.0
	} else {
		negRatio := float64(negativeEdges) / float64(edgeCount)
		dependency = clamp01(1 - negRatio)
		polarity = clamp01(1 - negRatio)
		contradiction = clamp01(math.Exp(-negRatio))
	}

	var abstraction float64
	if len(u.DerivedRequirements) == 0 {
		abstraction = 0
	} else {
		strengths := make([]float64, len(u.DerivedRequirements))
		for i, r := range u.DerivedRequirements {
			strengths[i] = r.Strength
		}
		abstraction = clamp01(1 - populationVariance(strengths)/1.0)
	}

	present := make(map[RequirementKind]bool)
	for _, r := range u.DerivedRequirements {
		present[r.Kind] = true
	}
	coverage := clamp01(float64(len(present)) / float64(requirementKindCount))

	total := clamp01((dependency + abstraction + polarity + contradiction + coverage) / 5.0)

	return Coherence{
		Dependency:    dependency,
		Abstraction:   abstraction,
		Polarity:      polarity,
		Contradiction: contradiction,
		Coverage:      coverage,
		TotalScore:    total,
	}
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

// ObjectiveCase is one frontier member's objective-space summary, the input
// to semantic re-ranking.
type ObjectiveCase struct {
	CaseID     uint64
	ParetoRank int
	TotalScore float64
	Unit       Unit
}

// Ranked is one case after semantic re-ranking, carrying its computed
// coherence alongside the original objective case.
type Ranked struct {
	Objective ObjectiveCase
	Coherence Coherence
}

// epsilon is the float-equality tolerance used when comparing scores for
// the ranking's tie-break cascade.
const epsilon = 1e-12

func cmpDescF64(a, b float64) int {
	if math.Abs(a-b) <= epsilon {
		return 0
	}
	if a > b {
		return -1
	}
	return 1
}

// RankFrontierBySemantic computes each case's coherence and returns the
// cases sorted by (Pareto rank ascending, total score descending within
// epsilon, coherence total score descending within epsilon, case id
// ascending) — a total, deterministic order that never changes the size of
// the input frontier.
func RankFrontierBySemantic(cases []ObjectiveCase) []Ranked {
	ranked := make([]Ranked, len(cases))
	for i, c := range cases {
		ranked[i] = Ranked{Objective: c, Coherence: ComputeCoherence(c.Unit)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Objective.ParetoRank != b.Objective.ParetoRank {
			return a.Objective.ParetoRank < b.Objective.ParetoRank
		}
		if c := cmpDescF64(a.Objective.TotalScore, b.Objective.TotalScore); c != 0 {
			return c < 0
		}
		if c := cmpDescF64(a.Coherence.TotalScore, b.Coherence.TotalScore); c != 0 {
			return c < 0
		}
		return a.Objective.CaseID < b.Objective.CaseID
	})
	return ranked
}
