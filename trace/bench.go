package trace

import (
	"time"

	"github.com/arclight-labs/dsbeam/design"
	"github.com/arclight-labs/dsbeam/evaluator"
)

// BenchResult is the averaged outcome of a warmup-then-timed-iterations
// benchmark run.
type BenchResult struct {
	TotalMs     float64
	LambdaFinal float32
}

// Run executes cfg.Warmup untimed iterations, then cfg.Iterations timed
// iterations, returning the averaged wall-clock time and final λ. Every
// iteration, warmup included, builds a fresh evaluator, so no
// interference-memory state carries from one iteration to the next.
// Each iteration derives its seed from cfg.Run.Seed plus the iteration
// index (wrapping on overflow, matching Go's defined signed-integer
// overflow semantics), so iterations are independent but reproducible.
func Run(initial *design.State, cfg BenchConfig, mode evaluator.Mode) (BenchResult, error) {
	if err := cfg.Validate(); err != nil {
		return BenchResult{}, err
	}

	rt := &Runtime{}

	for w := 0; w < cfg.Warmup; w++ {
		iterCfg := cfg.Run
		iterCfg.Seed = cfg.Run.Seed + int64(w)
		if _, err := rt.ExecuteSoftTrace(initial, iterCfg, cfg.Params, mode); err != nil {
			return BenchResult{}, err
		}
	}

	var totalMs float64
	var lambdaSum float32
	for i := 0; i < cfg.Iterations; i++ {
		iterCfg := cfg.Run
		iterCfg.Seed = cfg.Run.Seed + int64(i)

		start := time.Now()
		res, err := rt.ExecuteSoftTrace(initial, iterCfg, cfg.Params, mode)
		elapsed := time.Since(start)
		if err != nil {
			return BenchResult{}, err
		}

		totalMs += float64(elapsed) / float64(time.Millisecond)
		if len(res.Rows) > 0 {
			lambdaSum += res.Rows[len(res.Rows)-1].Lambda
		} else {
			lambdaSum += cfg.Params.InitialLambda
		}
	}

	n := float64(cfg.Iterations)
	return BenchResult{
		TotalMs:     totalMs / n,
		LambdaFinal: lambdaSum / float32(cfg.Iterations),
	}, nil
}
