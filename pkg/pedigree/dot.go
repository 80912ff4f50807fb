package pedigree

import (
	"bytes"
	"fmt"
)

// ToDOT converts a laid-out graph to Graphviz DOT text for external
// renderers. Generations become ranks, marriage links are drawn as
// undirected rank-constrained edges, parent-child links as arrows.
// This emits text only; rasterization is a consumer concern.
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pedigree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=11];\n")
	buf.WriteString("\n")

	for _, gen := range g.Generations() {
		buf.WriteString("  { rank=same;")
		for _, id := range g.Rows()[gen] {
			fmt.Fprintf(&buf, " %q;", id)
		}
		buf.WriteString(" }\n")
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		label := n.Name
		if n.Lifespan != "" {
			label += "\n" + n.Lifespan
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}
	buf.WriteString("\n")

	for _, l := range g.Links {
		switch l.Type {
		case LinkMarriage:
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=bold, constraint=false];\n", l.Source, l.Target)
		case LinkParentChild:
			fmt.Fprintf(&buf, "  %q -> %q;\n", l.Source, l.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
