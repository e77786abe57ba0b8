package design

import (
	"strings"

	"github.com/arclight-labs/dsbeam/idutil"
)

// historyPrefix marks the rule-application history segment of a profile
// snapshot string, following the "history:" convention the evaluator and
// rule-applicability step both parse.
const historyPrefix = "history:"

// State is one node in the design-space search tree: an id, a shared
// structural graph reference, and a textual profile snapshot recording the
// rule-application history that produced it.
type State struct {
	ID              idutil.StateID
	Graph           *StructuralGraph
	ProfileSnapshot string
}

// NewState constructs a root state with a freshly derived id.
func NewState(graph *StructuralGraph, profileSnapshot string) *State {
	var zero idutil.StateID
	return &State{
		ID:              idutil.DeriveStateID(zero, "root", 0),
		Graph:           graph,
		ProfileSnapshot: profileSnapshot,
	}
}

// lastAppliedRuleID returns the id of the most recently applied rule, the
// last comma-separated, non-empty segment of the profile snapshot's history
// list, or "" if none has been applied yet.
func lastAppliedRuleID(profileSnapshot string) string {
	idx := strings.Index(profileSnapshot, historyPrefix)
	if idx < 0 {
		return ""
	}
	history := profileSnapshot[idx+len(historyPrefix):]
	if end := strings.IndexByte(history, ';'); end >= 0 {
		history = history[:end]
	}
	parts := strings.Split(history, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		p := strings.TrimSpace(parts[i])
		if p != "" {
			return p
		}
	}
	return ""
}

// HistoryDepth returns the number of non-empty rule applications recorded
// in the profile snapshot's history segment.
func HistoryDepth(profileSnapshot string) int {
	idx := strings.Index(profileSnapshot, historyPrefix)
	if idx < 0 {
		return 0
	}
	history := profileSnapshot[idx+len(historyPrefix):]
	if end := strings.IndexByte(history, ';'); end >= 0 {
		history = history[:end]
	}
	count := 0
	for _, p := range strings.Split(history, ",") {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}

// appendHistory returns a profile snapshot with ruleID appended to the
// history segment, creating the segment if absent.
func appendHistory(profileSnapshot, ruleID string) string {
	idx := strings.Index(profileSnapshot, historyPrefix)
	if idx < 0 {
		if profileSnapshot == "" {
			return historyPrefix + ruleID
		}
		return profileSnapshot + ";" + historyPrefix + ruleID
	}
	prefix := profileSnapshot[:idx]
	rest := profileSnapshot[idx+len(historyPrefix):]
	history := rest
	tail := ""
	if end := strings.IndexByte(rest, ';'); end >= 0 {
		history = rest[:end]
		tail = rest[end:]
	}
	if history == "" {
		history = ruleID
	} else {
		history = history + "," + ruleID
	}
	return prefix + historyPrefix + history + tail
}

// ApplyAtomic applies rule to parent, where index is rule's position in
// ApplicableRules(parent), returning the derived state. The derived state's id is a
// deterministic function of (parent.ID, rule.ID, index), never randomly
// generated, so repeated runs with the same seed and config produce
// identical trees.
//
// The structural graph is always cloned (siblings derived from the same
// parent at this depth share parent.Graph and must not see each other's
// mutations) and then grown by one node for this rule and, if the parent
// already carries an applied-rule history, one edge from the previously
// applied rule's node to this one — the shared structural reference tracks
// the lineage of composed rules, which the evaluator's structural score
// reads back via Graph.NodeCount and Graph.Snapshot.
func ApplyAtomic(parent *State, rule Rule, index int) *State {
	graph := rule.Apply(parent.Graph).Clone()
	_ = graph.AddNode(rule.ID, CategoryOf(rule.Category))
	if last := lastAppliedRuleID(parent.ProfileSnapshot); last != "" && last != rule.ID {
		_ = graph.Link(last, rule.ID)
	}
	return &State{
		ID:              idutil.DeriveStateID(parent.ID, rule.ID, index),
		Graph:           graph,
		ProfileSnapshot: appendHistory(parent.ProfileSnapshot, rule.ID),
	}
}
