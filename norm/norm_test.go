package norm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRobustStandardizeOddN(t *testing.T) {
	r := require.New(t)
	out := RobustStandardize([]float64{1, 2, 3})
	r.InDelta(0, out[1], 1e-9)
}

func TestRobustStandardizeDegenerate(t *testing.T) {
	r := require.New(t)
	out := RobustStandardize([]float64{5, 5, 5})
	for _, v := range out {
		r.InDelta(0, v, 1e-9)
	}
}

func TestMinmaxScaleBasic(t *testing.T) {
	r := require.New(t)
	out := MinmaxScale([]float64{0, 5, 10}, 0.5)
	r.InDelta(0, out[0], 1e-12)
	r.InDelta(0.5, out[1], 1e-12)
	r.InDelta(1, out[2], 1e-12)
}

func TestMinmaxScaleDegenerateRange(t *testing.T) {
	r := require.New(t)
	out := MinmaxScale([]float64{3, 3, 3}, 0.5)
	for _, v := range out {
		r.Equal(0.5, v)
	}
}

func TestMinmaxScaleNonFinite(t *testing.T) {
	r := require.New(t)
	out := MinmaxScale([]float64{1, math.NaN(), 3}, 0.25)
	for _, v := range out {
		r.Equal(0.25, v)
	}
}

func TestNormalizeByDepthIgnoresDepth(t *testing.T) {
	r := require.New(t)
	values := []float64{1, 2, 3, 4}
	a := NormalizeByDepth(values, 0)
	b := NormalizeByDepth(values, 7)
	r.Equal(a, b)
}
