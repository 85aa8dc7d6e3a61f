package coursegraph

import (
	"fmt"
	"io"
	"sort"

	"prereqmap/services/coursegraph/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// courseNode is a graph node labelled with its course code so the dot
// output reads COMP1511 -- COMP2521 instead of bare integers.
type courseNode struct {
	id   int64
	code string
}

func (n courseNode) ID() int64     { return n.id }
func (n courseNode) DOTID() string { return n.code }

// Graph is the undirected course-relationship graph. Relationships
// have no useful direction for drawing purposes: "A requires B" and
// "B unlocks A" are the same edge.
type Graph struct {
	graph *simple.UndirectedGraph
	nodes map[string]courseNode
}

// Build constructs the graph from stored relations, keeping only the
// requested kinds (all kinds when none are given). Duplicate edges
// collapse; self references are dropped rather than drawn as loops.
func Build(relations []db.CourseRelation, kinds ...db.RelationKind) *Graph {
	keep := map[int64]struct{}{}
	for _, k := range kinds {
		keep[int64(k)] = struct{}{}
	}

	g := &Graph{
		graph: simple.NewUndirectedGraph(),
		nodes: map[string]courseNode{},
	}

	for _, rel := range relations {
		if len(keep) > 0 {
			if _, ok := keep[rel.Kind]; !ok {
				continue
			}
		}
		if rel.CourseCode == rel.RelatedCode {
			continue
		}

		from := g.node(rel.CourseCode)
		to := g.node(rel.RelatedCode)
		g.graph.SetEdge(g.graph.NewEdge(from, to))
	}

	return g
}

func (g *Graph) node(code string) courseNode {
	existing, ok := g.nodes[code]
	if ok {
		return existing
	}
	n := courseNode{id: int64(len(g.nodes)), code: code}
	g.nodes[code] = n
	g.graph.AddNode(n)
	return n
}

func (g *Graph) NodeCount() int {
	return g.graph.Nodes().Len()
}

func (g *Graph) EdgeCount() int {
	return g.graph.Edges().Len()
}

// WriteDOT renders the graph in graphviz dot format, suitable for
// `dot -Tsvg` or `neato`.
func (g *Graph) WriteDOT(w io.Writer, name string) error {
	out, err := dot.Marshal(g.graph, name, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Summary renders a per-subject-area breakdown of nodes and edges as a
// printable table.
func Summary(relations []db.CourseRelation) string {
	type areaStats struct {
		edges int
	}
	areas := map[string]*areaStats{}

	for _, rel := range relations {
		area := rel.CourseCode
		if len(area) >= 4 {
			area = area[:4]
		}
		stats, ok := areas[area]
		if !ok {
			stats = &areaStats{}
			areas[area] = stats
		}
		stats.edges++
	}

	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Subject Area", "Relations"})
	for _, name := range names {
		t.AppendRow(table.Row{name, areas[name].edges})
	}
	t.AppendFooter(table.Row{"Total", len(relations)})
	return fmt.Sprintln(t.Render())
}
