package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplexArithmetic(t *testing.T) {
	r := require.New(t)
	a := NewComplex(1, 2)
	b := NewComplex(3, -1)
	r.Equal(NewComplex(4, 1), a.Add(b))
	r.Equal(NewComplex(1, -2), a.Conj())
	r.InDelta(5, a.NormSqr(), 1e-6)
}

func TestComposeCategoryFieldEmpty(t *testing.T) {
	r := require.New(t)
	e := Engine{}
	v := e.ComposeCategoryField(nil)
	r.Equal(Zeros(Dim), v)
}

func TestComposeCategoryFieldDedup(t *testing.T) {
	r := require.New(t)
	e := Engine{}
	once := e.ComposeCategoryField([]Category{CategoryPerformance})
	twice := e.ComposeCategoryField([]Category{CategoryPerformance, CategoryPerformance})
	r.Equal(once, twice)
}

func TestBuildTargetFieldBlend(t *testing.T) {
	r := require.New(t)
	e := Engine{}
	tf := BuildTargetField(e, []Category{CategoryPerformance}, []Category{CategoryControl}, 1.0)
	r.Equal(tf.Local, tf.Blended)
}

func TestPressureIsMonotonicInCollapse(t *testing.T) {
	r := require.New(t)
	collapsed := PressureFromDiversity(0.0)
	spread := PressureFromDiversity(1.0)
	r.Greater(collapsed, spread)
}

func TestEpsilonEffectIsBounded(t *testing.T) {
	r := require.New(t)
	for _, p := range []float64{0, 0.2, 0.5, 0.9, 1.0} {
		e := EpsilonEffect(p)
		r.GreaterOrEqual(e, 0.0)
		r.LessOrEqual(e, DiversityEpsilonMax)
	}
}

func TestApplyDiversityPressureReportsWeightsAndDistance(t *testing.T) {
	r := require.New(t)
	e := Engine{}
	global := e.ComposeCategoryField([]Category{CategoryPerformance})
	local := e.ComposeCategoryField([]Category{CategoryControl})
	tf := BuildTargetField(e, []Category{CategoryPerformance}, []Category{CategoryControl}, 0.5)
	adjusted, adj := ApplyDiversityPressure(tf, global, local, 0.5, 0.0)
	r.InDelta(1.0, adj.TargetLocalWeight+adj.TargetGlobalWeight, 1e-12)
	r.Greater(adj.LocalGlobalDistance, 0.0)
	r.NotNil(adjusted.Blended)
}

func TestApplyDiversityPressureDiversityIsIndependentOfFieldSeparation(t *testing.T) {
	r := require.New(t)
	e := Engine{}
	global := e.ComposeCategoryField([]Category{CategoryPerformance})
	local := e.ComposeCategoryField([]Category{CategoryControl})
	tf := BuildTargetField(e, []Category{CategoryPerformance}, []Category{CategoryControl}, 0.5)
	// local_global_distance is > 0 here, but a caller can still report full
	// collapse (d=0) since diversity measures the spread of the frontier's
	// candidates, not the target field's own separation.
	_, adj := ApplyDiversityPressure(tf, global, local, 0.5, 0.0)
	r.Greater(adj.LocalGlobalDistance, 0.0)
	r.InDelta(1.0, adj.Pressure, 1e-9)
}
