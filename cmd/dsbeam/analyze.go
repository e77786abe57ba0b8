package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arclight-labs/dsbeam/analysis"
	"github.com/arclight-labs/dsbeam/beam"
	"github.com/arclight-labs/dsbeam/design"
	"github.com/arclight-labs/dsbeam/evaluator"
	"github.com/arclight-labs/dsbeam/field"
	"github.com/arclight-labs/dsbeam/objective"
	"github.com/arclight-labs/dsbeam/semantic"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a beam search and report the final frontier",
		RunE:  runAnalyze,
	}
	cmd.Flags().Int("beam-width", 8, "beam width (candidates kept per depth)")
	cmd.Flags().Int("max-steps", 6, "maximum search depth")
	cmd.Flags().Int64("seed", 1, "deterministic evaluation seed")
	cmd.Flags().Bool("semantic-rank", false, "re-rank the final frontier by semantic coherence")
	cmd.Flags().Bool("human-coherence", false, "include per-component coherence detail")
	cmd.Flags().String("dump-analysis", "", "path to write the analysis report JSON; stdout if empty")
	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	beamWidth, _ := cmd.Flags().GetInt("beam-width")
	maxSteps, _ := cmd.Flags().GetInt("max-steps")
	seed, _ := cmd.Flags().GetInt64("seed")
	semanticRank, _ := cmd.Flags().GetBool("semantic-rank")
	humanCoherence, _ := cmd.Flags().GetBool("human-coherence")
	dumpPath, _ := cmd.Flags().GetString("dump-analysis")

	initial := design.NewState(design.NewStructuralGraph(), "")
	eval := evaluator.New(seed, evaluator.ModeFromEnv())

	result, _ := beam.Search(initial, beam.Config{
		MaxDepth:      maxSteps,
		BeamWidth:     beamWidth,
		Seed:          seed,
		NormAlpha:     0.5,
		Mode:          beam.Auto,
		InitialLambda: 0.5,
	}, eval, field.Engine{})

	cases := make([]semantic.ObjectiveCase, len(result.FinalFrontier))
	for i, state := range result.FinalFrontier {
		v := eval.Evaluate(state, design.NodeAbstraction)
		cases[i] = semantic.ObjectiveCase{
			CaseID:     idToUint64(state.ID),
			ParetoRank: i,
			TotalScore: objective.ScalarScore(v),
			Unit:       unitFromState(state),
		}
	}

	var ranked []semantic.Ranked
	if semanticRank {
		ranked = semantic.RankFrontierBySemantic(cases)
	} else {
		ranked = make([]semantic.Ranked, len(cases))
		for i, c := range cases {
			ranked[i] = semantic.Ranked{Objective: c, Coherence: semantic.ComputeCoherence(c.Unit)}
		}
	}

	report := analysis.Analyze(ranked, humanCoherence)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("dsbeam: marshal report: %w", err)
	}

	if dumpPath == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(dumpPath, out, 0o644)
}

func idToUint64(id [16]byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(id[i])
	}
	return v
}

// unitFromState derives a semantic.Unit from a design state's rule-category
// history so the analyze command has something to compute coherence over
// without a dedicated concept/requirement store.
func unitFromState(state *design.State) semantic.Unit {
	depth := design.HistoryDepth(state.ProfileSnapshot)
	applied := make(map[string]bool, depth)
	for _, node := range state.Graph.Snapshot() {
		applied[node.ID] = true
	}
	reqs := make([]semantic.DerivedRequirement, 0, depth)
	for _, rule := range design.Catalog {
		if !applied[rule.ID] {
			continue
		}
		reqs = append(reqs, semantic.DerivedRequirement{
			Kind:     requirementKindFor(rule.Category),
			Strength: 0.7,
		})
	}
	return semantic.Unit{ID: idToUint64(state.ID), DerivedRequirements: reqs}
}

func requirementKindFor(rc design.RuleCategory) semantic.RequirementKind {
	switch rc {
	case design.Performance:
		return semantic.Performance
	case design.Cost:
		return semantic.Memory
	case design.Reliability:
		return semantic.Reliability
	case design.ConstraintPropagation:
		return semantic.NoCloud
	default:
		return semantic.Security
	}
}
