package design

import "github.com/arclight-labs/dsbeam/field"

// RuleCategory is the coarse category a catalog rule belongs to, as
// authored in the rule catalog.
type RuleCategory int

const (
	Structural RuleCategory = iota
	Performance
	Reliability
	Cost
	Refactor
	ConstraintPropagation
)

// NodeCategory is the field-space category a rule projects onto. The
// mapping from RuleCategory to NodeCategory is fixed and exhaustive.
type NodeCategory int

const (
	NodeAbstraction NodeCategory = iota
	NodePerformance
	NodeReliability
	NodeCostSensitive
	NodeControl
	NodeConstraint
)

// CategoryOf maps a rule category onto its node (field) category. This is a
// closed, exhaustive switch: every RuleCategory has exactly one
// NodeCategory, and no dynamic registration is supported.
func CategoryOf(rc RuleCategory) NodeCategory {
	switch rc {
	case Structural:
		return NodeAbstraction
	case Performance:
		return NodePerformance
	case Reliability:
		return NodeReliability
	case Cost:
		return NodeCostSensitive
	case Refactor:
		return NodeControl
	case ConstraintPropagation:
		return NodeConstraint
	default:
		return NodeAbstraction
	}
}

// FieldCategory converts a NodeCategory into the corresponding field.Category
// axis.
func FieldCategory(nc NodeCategory) field.Category {
	switch nc {
	case NodeAbstraction:
		return field.CategoryAbstraction
	case NodePerformance:
		return field.CategoryPerformance
	case NodeReliability:
		return field.CategoryReliability
	case NodeCostSensitive:
		return field.CategoryCostSensitive
	case NodeControl:
		return field.CategoryControl
	case NodeConstraint:
		return field.CategoryConstraint
	default:
		return field.CategoryAbstraction
	}
}

// Rule is one deterministic state transformation in the catalog.
type Rule struct {
	ID       string
	Step     string
	Category RuleCategory
	// Apply takes the parent's structural graph and returns the graph the
	// derived state should start from, before ApplyAtomic clones it and
	// records this rule's node. Most rules have nothing of their own to
	// change here and return g unchanged (identityApply); a rule that needs
	// to branch structure beyond the generic per-application node/edge
	// bookkeeping does so here.
	Apply func(g *StructuralGraph) *StructuralGraph
}

// Catalog is the fixed, deterministic rule library every beam search step
// draws candidates from. It is intentionally small and hand-authored
// rather than dynamically registered, per the rule-category mapping's
// closed-switch design.
var Catalog = []Rule{
	{ID: "split-module", Step: "split-module", Category: Structural, Apply: identityApply},
	{ID: "merge-module", Step: "merge-module", Category: Structural, Apply: identityApply},
	{ID: "cache-hot-path", Step: "cache-hot-path", Category: Performance, Apply: identityApply},
	{ID: "batch-io", Step: "batch-io", Category: Performance, Apply: identityApply},
	{ID: "add-retry", Step: "add-retry", Category: Reliability, Apply: identityApply},
	{ID: "add-circuit-breaker", Step: "add-circuit-breaker", Category: Reliability, Apply: identityApply},
	{ID: "downsize-instance", Step: "downsize-instance", Category: Cost, Apply: identityApply},
	{ID: "spot-fallback", Step: "spot-fallback", Category: Cost, Apply: identityApply},
	{ID: "extract-interface", Step: "extract-interface", Category: Refactor, Apply: identityApply},
	{ID: "inline-wrapper", Step: "inline-wrapper", Category: Refactor, Apply: identityApply},
	{ID: "propagate-invariant", Step: "propagate-invariant", Category: ConstraintPropagation, Apply: identityApply},
	{ID: "tighten-bound", Step: "tighten-bound", Category: ConstraintPropagation, Apply: identityApply},
}

// identityApply returns the parent graph unchanged; every catalog rule uses
// it, since ApplyAtomic already records the generic per-application
// node/edge bookkeeping every rule needs and none of these twelve rules has
// additional structure of its own to add.
func identityApply(g *StructuralGraph) *StructuralGraph {
	return g
}

// ApplicableRules returns every catalog rule except the one most recently
// applied to state (parsed from the tail of its profile snapshot), keeping
// the branching factor bounded without needing an unbounded rule set.
func ApplicableRules(state *State) []Rule {
	last := lastAppliedRuleID(state.ProfileSnapshot)
	out := make([]Rule, 0, len(Catalog))
	for _, r := range Catalog {
		if r.ID == last {
			continue
		}
		out = append(out, r)
	}
	return out
}
