package objective

import "testing"

import "github.com/stretchr/testify/require"

func TestClamped(t *testing.T) {
	r := require.New(t)
	v := Vector{Struct: -1, Field: 2, Risk: 0.5, Shape: 1.5}.Clamped()
	r.Equal(Vector{Struct: 0, Field: 1, Risk: 0.5, Shape: 1}, v)
}

func TestProfileNormalized(t *testing.T) {
	r := require.New(t)
	p := Profile{StructWeight: 1, FieldWeight: 1, RiskWeight: 1, CostWeight: 1}.Normalized()
	r.InDelta(0.25, p.StructWeight, 1e-12)
	r.InDelta(0.25, p.CostWeight, 1e-12)
}

func TestProfileNormalizedZeroSum(t *testing.T) {
	r := require.New(t)
	p := Profile{}.Normalized()
	r.False(isNaN(p.StructWeight))
}

func isNaN(f float64) bool { return f != f }

func TestScalarScoreMatchesLinearScorer(t *testing.T) {
	r := require.New(t)
	v := Vector{Struct: 0.9, Field: 0.2, Risk: 0.1, Shape: 0.6}
	r.InDelta(LinearScorer{}.Score(v), ScalarScore(v), 1e-12)
	r.InDelta(0.4*0.9+0.2*0.2+0.2*0.1+0.2*0.6, ScalarScore(v), 1e-12)
}

func TestProfileScoreClamped(t *testing.T) {
	r := require.New(t)
	p := Profile{StructWeight: 10, FieldWeight: 0, RiskWeight: 0, CostWeight: 0}
	v := Vector{Struct: 1, Field: 1, Risk: 1, Shape: 1}
	r.Equal(1.0, p.Score(v))
}
