package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DOT produces a Graphviz representation with node positions pinned to the
// circular layout. Render it with `neato -n`.
func (g Graph) DOT() string {
	var b strings.Builder
	b.WriteString("graph universe {\n")
	b.WriteString("  layout=neato;\n")
	b.WriteString(fmt.Sprintf("  bb=\"0,0,%s,%s\";\n", num(ViewWidth), num(ViewHeight)))
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\", fontsize=8];\n")
	b.WriteString("  edge [color=\"#22d3ee55\"];\n\n")

	for i, n := range g.Nodes {
		// Graphviz y grows upwards
		pos := fmt.Sprintf("%s,%s!", num(n.Pos.X), num(ViewHeight-n.Pos.Y))
		label := fmt.Sprintf("%s\nR:%d", n.Agent.Name, n.Agent.Rank)
		b.WriteString(fmt.Sprintf("  n%d [label=%q, fillcolor=%q, pos=%q, tooltip=%q];\n",
			i, label, n.Color.Hex, pos, n.Agent.ID))
	}
	if len(g.Edges) > 0 {
		b.WriteString("\n")
	}
	for _, e := range g.Edges {
		b.WriteString(fmt.Sprintf("  n%d -- n%d;\n", e.From, e.To))
	}

	b.WriteString("}\n")
	return b.String()
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	s := strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
