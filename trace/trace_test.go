package trace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-labs/dsbeam/design"
	"github.com/arclight-labs/dsbeam/evaluator"
)

func TestBalancedParamsClampsAlpha(t *testing.T) {
	r := require.New(t)
	r.InDelta(0.1, BalancedParams(0).Alpha, 1e-12)
	r.InDelta(1.0, BalancedParams(100).Alpha, 1e-12)
	r.InDelta(0.5, BalancedParams(5).Alpha, 1e-12)
}

func TestRunConfigValidateAggregatesErrors(t *testing.T) {
	r := require.New(t)
	cfg := RunConfig{Depth: -1, Beam: -1, NormAlpha: 2}
	err := cfg.Validate()
	r.Error(err)
}

func TestExecuteSoftTraceZeroBeamReturnsInitialOnly(t *testing.T) {
	r := require.New(t)
	initial := design.NewState(design.NewStructuralGraph(), "")
	rt := &Runtime{}
	res, err := rt.ExecuteSoftTrace(initial, RunConfig{Depth: 3, Beam: 0, NormAlpha: 0.5}, DefaultSoftTraceParams(), evaluator.Disabled)
	r.NoError(err)
	r.Len(res.FinalFrontier, 1)
	r.Empty(res.Rows)
}

func TestExecuteSoftTraceRecordsOneRowPerDepth(t *testing.T) {
	r := require.New(t)
	initial := design.NewState(design.NewStructuralGraph(), "")
	rt := &Runtime{}
	res, err := rt.ExecuteSoftTrace(initial, RunConfig{Depth: 3, Beam: 2, Seed: 5, NormAlpha: 0.5}, DefaultSoftTraceParams(), evaluator.Disabled)
	r.NoError(err)
	r.Len(res.Rows, 3)
	r.Equal(1, res.Rows[0].Depth)
	r.Equal(3, res.Rows[2].Depth)
}

func TestLambdaControllerTargetsOneOnCollapse(t *testing.T) {
	r := require.New(t)
	c := newLambdaController(SoftTraceParams{Alpha: 1.0, InitialLambda: 0.5})
	lambda, delta := c.step(true)
	r.InDelta(1.0, lambda, 1e-6)
	r.Greater(delta, float32(0))
}

func TestLambdaControllerTargetsPointThreeWithoutCollapse(t *testing.T) {
	r := require.New(t)
	c := newLambdaController(SoftTraceParams{Alpha: 1.0, InitialLambda: 0.5})
	lambda, delta := c.step(false)
	r.InDelta(0.3, lambda, 1e-6)
	r.Less(delta, float32(0))
}

func TestBenchRunAveragesOverIterations(t *testing.T) {
	r := require.New(t)
	initial := design.NewState(design.NewStructuralGraph(), "")
	cfg := DefaultBenchConfig()
	cfg.Run.Depth = 2
	cfg.Run.Beam = 2
	cfg.Warmup = 1
	cfg.Iterations = 2
	res, err := Run(initial, cfg, evaluator.Disabled)
	r.NoError(err)
	r.GreaterOrEqual(res.TotalMs, 0.0)
}
