// Package design holds the design-state data model: the shared structural
// graph every state points to, the rule catalog that derives new states,
// and the deterministic state-application step the beam search drives.
package design

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// StructuralGraph is the structural reference every DesignState carries.
// ApplyAtomic gives each derived state its own clone, so a derived state
// never shares a *core.Graph with its parent or its siblings.
type StructuralGraph struct {
	g *core.Graph
}

// NewStructuralGraph returns an empty, undirected, unweighted structural
// graph with vertex metadata enabled for category annotation.
func NewStructuralGraph() *StructuralGraph {
	return &StructuralGraph{g: core.NewGraph()}
}

// AddNode adds a vertex with the given id and category annotation. It is a
// no-op if the vertex already exists.
func (sg *StructuralGraph) AddNode(id string, category NodeCategory) error {
	if sg.g.HasVertex(id) {
		return nil
	}
	if err := sg.g.AddVertex(id); err != nil {
		return fmt.Errorf("design: add node %q: %w", id, err)
	}
	if v, ok := sg.g.InternalVertices()[id]; ok && v.Metadata != nil {
		v.Metadata["category"] = category
	}
	return nil
}

// Link adds an undirected structural edge between two existing nodes.
func (sg *StructuralGraph) Link(from, to string) error {
	if _, err := sg.g.AddEdge(from, to, 0); err != nil {
		return fmt.Errorf("design: link %q->%q: %w", from, to, err)
	}
	return nil
}

// NodeSummary is a read-only snapshot of one graph vertex, used by the
// structural evaluator without exposing mutation access.
type NodeSummary struct {
	ID    string
	Edges int
}

// Snapshot returns a deterministic, id-ordered summary of every node in the
// graph, for evaluators that need to read structure without holding a
// reference to the underlying graph implementation.
func (sg *StructuralGraph) Snapshot() []NodeSummary {
	ids := sg.g.Vertices()
	out := make([]NodeSummary, len(ids))
	for i, id := range ids {
		in, out2, undirected, _ := sg.g.Degree(id)
		out[i] = NodeSummary{ID: id, Edges: in + out2 + undirected}
	}
	return out
}

// NodeCount returns the number of vertices in the graph.
func (sg *StructuralGraph) NodeCount() int {
	return sg.g.VertexCount()
}

// Clone returns a deep copy of the graph, used when a rule must branch
// structure rather than share it.
func (sg *StructuralGraph) Clone() *StructuralGraph {
	return &StructuralGraph{g: sg.g.Clone()}
}
