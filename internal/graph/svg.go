package graph

import (
	"fmt"
	"html"
	"strings"
)

// SVG renders the graph in the 200x140 view box: translucent edges, a glow
// ring and a solid core per node, the name above and the rank below.
// emptyLabel is drawn in the middle when there are no agents.
func (g Graph) SVG(emptyLabel string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n",
		num(ViewWidth), num(ViewHeight)))

	if g.Empty() {
		b.WriteString(fmt.Sprintf(`  <text x="%s" y="%s" text-anchor="middle" fill="#6b7280" font-size="7">%s</text>`+"\n",
			num(CenterX), num(CenterY), html.EscapeString(emptyLabel)))
		b.WriteString("</svg>\n")
		return b.String()
	}

	for _, e := range g.Edges {
		from, to := g.Nodes[e.From].Pos, g.Nodes[e.To].Pos
		b.WriteString(fmt.Sprintf(`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="rgba(34, 211, 238, 0.2)" stroke-width="0.5"/>`+"\n",
			num(from.X), num(from.Y), num(to.X), num(to.Y)))
	}

	for _, n := range g.Nodes {
		x, y := num(n.Pos.X), num(n.Pos.Y)
		b.WriteString(fmt.Sprintf(`  <g id="%s">`+"\n", html.EscapeString(n.Agent.ID)))
		b.WriteString(fmt.Sprintf(`    <circle cx="%s" cy="%s" r="8" fill="%s" fill-opacity="0.3" stroke="%s" stroke-width="1.5"/>`+"\n",
			x, y, n.Color.Hex, n.Color.Hex))
		b.WriteString(fmt.Sprintf(`    <circle cx="%s" cy="%s" r="4" fill="%s" opacity="0.9"/>`+"\n",
			x, y, n.Color.Hex))
		b.WriteString(fmt.Sprintf(`    <text x="%s" y="%s" text-anchor="middle" fill="%s" font-size="7" font-weight="600">%s</text>`+"\n",
			x, num(n.Pos.Y-15), n.Color.Hex, html.EscapeString(n.Agent.Name)))
		b.WriteString(fmt.Sprintf(`    <text x="%s" y="%s" text-anchor="middle" fill="rgba(255,255,255,0.6)" font-size="6">R:%d</text>`+"\n",
			x, num(n.Pos.Y+20), n.Agent.Rank))
		b.WriteString("  </g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}
