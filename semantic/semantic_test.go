package semantic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unitWith(kinds ...RequirementKind) Unit {
	reqs := make([]DerivedRequirement, len(kinds))
	for i, k := range kinds {
		reqs[i] = DerivedRequirement{Kind: k, Strength: 0.8}
	}
	return Unit{DerivedRequirements: reqs}
}

func TestComputeCoherenceNoEdgesDefaults(t *testing.T) {
	r := require.New(t)
	c := ComputeCoherence(Unit{})
	r.Equal(0.5, c.Dependency)
	r.Equal(1.0, c.Polarity)
	r.Equal(1.0, c.Contradiction)
	r.Equal(0.0, c.Abstraction)
	r.Equal(0.0, c.Coverage)
}

func TestComputeCoherenceCoverageCountsDistinctKinds(t *testing.T) {
	r := require.New(t)
	c := ComputeCoherence(unitWith(Performance, Memory, Performance))
	r.InDelta(2.0/5.0, c.Coverage, 1e-12)
}

func TestComputeCoherenceNegativeEdgesLowerDependencyAndPolarity(t *testing.T) {
	r := require.New(t)
	u := Unit{CausalLinks: []CausalEdge{{Weight: -1}, {Weight: 1}}}
	c := ComputeCoherence(u)
	r.InDelta(0.5, c.Dependency, 1e-12)
	r.InDelta(0.5, c.Polarity, 1e-12)
}

func TestSemanticRankingIsDeterministic(t *testing.T) {
	r := require.New(t)
	cases := []ObjectiveCase{
		{CaseID: 2, ParetoRank: 0, TotalScore: 0.5, Unit: unitWith(Performance)},
		{CaseID: 1, ParetoRank: 0, TotalScore: 0.5, Unit: unitWith(Memory)},
	}
	a := RankFrontierBySemantic(cases)
	b := RankFrontierBySemantic(cases)
	r.Equal(a, b)
}

func TestRankingDoesNotChangeFrontierSize(t *testing.T) {
	r := require.New(t)
	cases := []ObjectiveCase{
		{CaseID: 1, ParetoRank: 1}, {CaseID: 2, ParetoRank: 0}, {CaseID: 3, ParetoRank: 2},
	}
	ranked := RankFrontierBySemantic(cases)
	r.Len(ranked, len(cases))
}

func TestRankingRespectsParetoRank(t *testing.T) {
	r := require.New(t)
	cases := []ObjectiveCase{
		{CaseID: 1, ParetoRank: 2, TotalScore: 0.99},
		{CaseID: 2, ParetoRank: 0, TotalScore: 0.01},
	}
	ranked := RankFrontierBySemantic(cases)
	r.Equal(uint64(2), ranked[0].Objective.CaseID)
}

func TestHigherCoherenceRanksHigherWhenObjectiveEqual(t *testing.T) {
	r := require.New(t)
	cases := []ObjectiveCase{
		{CaseID: 1, ParetoRank: 0, TotalScore: 0.5, Unit: Unit{}},
		{CaseID: 2, ParetoRank: 0, TotalScore: 0.5, Unit: unitWith(Performance, Memory, Security, Reliability, NoCloud)},
	}
	ranked := RankFrontierBySemantic(cases)
	r.Equal(uint64(2), ranked[0].Objective.CaseID)
}

func TestIDTieBreakAscending(t *testing.T) {
	r := require.New(t)
	cases := []ObjectiveCase{
		{CaseID: 5, ParetoRank: 0, TotalScore: 0.5},
		{CaseID: 1, ParetoRank: 0, TotalScore: 0.5},
	}
	ranked := RankFrontierBySemantic(cases)
	r.Equal(uint64(1), ranked[0].Objective.CaseID)
}
