// Package trace drives the beam search depth by depth while adapting the
// global/local blend weight λ, recording structured per-depth trace rows,
// and running warmup/timed benchmark iterations.
package trace

import (
	"fmt"

	"github.com/arclight-labs/dsbeam/dserrors"
	"github.com/arclight-labs/dsbeam/internal/wrappers"
)

// SoftTraceParams configures the λ-adaptation controller driving one soft
// trace run.
type SoftTraceParams struct {
	// Alpha is the controller's step size: lambda moves alpha of the way
	// toward its per-depth target each step.
	Alpha float64
	// InitialLambda seeds the blend weight for depth 0.
	InitialLambda float32
}

// DefaultSoftTraceParams returns the controller defaults: a moderate step
// size and an even global/local starting blend.
func DefaultSoftTraceParams() SoftTraceParams {
	return SoftTraceParams{Alpha: 0.3, InitialLambda: 0.5}
}

// BalancedParams scales Alpha to the requested beam width m, following the
// reference runtime's balanced-mode formula: alpha = clamp(m/10, 0.1, 1.0).
func BalancedParams(m int) SoftTraceParams {
	alpha := float64(m) / 10.0
	if alpha < 0.1 {
		alpha = 0.1
	}
	if alpha > 1.0 {
		alpha = 1.0
	}
	return SoftTraceParams{Alpha: alpha, InitialLambda: 0.5}
}

// Validate checks that Alpha lies in (0, 1].
func (p SoftTraceParams) Validate() error {
	if p.Alpha <= 0 || p.Alpha > 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1], got %v", dserrors.ErrInvalidInput, p.Alpha)
	}
	if p.InitialLambda < 0 || p.InitialLambda > 1 {
		return fmt.Errorf("%w: initial lambda must be in [0, 1], got %v", dserrors.ErrInvalidInput, p.InitialLambda)
	}
	return nil
}

// RunConfig configures one traced beam-search run, matching the documented
// external-interface surface. AdaptiveAlpha and HVGuided are accepted and
// validated but are not wired to any controller: no documented behavior
// for either exists in the corpus this module was built from, so both are
// carried inert rather than silently dropped. RawOutputPath is carried as
// well, but ExecuteSoftTrace does not read it and writes no raw objective
// rows.
type RunConfig struct {
	Depth         int
	Beam          int
	Seed          int64
	NormAlpha     float64
	AdaptiveAlpha bool
	HVGuided      bool
	RawOutputPath string
}

// DefaultRunConfig returns reasonable defaults for an exploratory run.
func DefaultRunConfig() RunConfig {
	return RunConfig{Depth: 6, Beam: 8, Seed: 1, NormAlpha: 0.5}
}

// Validate checks RunConfig for structurally invalid values, aggregating
// every violation it finds rather than stopping at the first.
func (c RunConfig) Validate() error {
	var errs wrappers.Errs
	if c.Depth < 0 {
		errs.Add(fmt.Errorf("%w: depth must be >= 0, got %d", dserrors.ErrInvalidInput, c.Depth))
	}
	if c.Beam < 0 {
		errs.Add(fmt.Errorf("%w: beam must be >= 0, got %d", dserrors.ErrInvalidInput, c.Beam))
	}
	if c.NormAlpha < 0 || c.NormAlpha > 1 {
		errs.Add(fmt.Errorf("%w: norm_alpha must be in [0, 1], got %v", dserrors.ErrInvalidInput, c.NormAlpha))
	}
	return errs.Err()
}

// BenchConfig configures a warmup + timed-iteration benchmark of RunConfig.
type BenchConfig struct {
	Run        RunConfig
	Params     SoftTraceParams
	Warmup     int
	Iterations int
}

// DefaultBenchConfig returns a small, fast-running benchmark configuration.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{Run: DefaultRunConfig(), Params: DefaultSoftTraceParams(), Warmup: 2, Iterations: 5}
}

// Validate checks BenchConfig, including its embedded RunConfig and Params.
func (c BenchConfig) Validate() error {
	var errs wrappers.Errs
	errs.Add(c.Run.Validate())
	errs.Add(c.Params.Validate())
	if c.Warmup < 0 {
		errs.Add(fmt.Errorf("%w: warmup must be >= 0, got %d", dserrors.ErrInvalidInput, c.Warmup))
	}
	if c.Iterations < 1 {
		errs.Add(fmt.Errorf("%w: iterations must be >= 1, got %d", dserrors.ErrInvalidInput, c.Iterations))
	}
	return errs.Err()
}
