// Package graph lays out the admitted agents on a circle, joins every pair
// of agents with an edge, and renders the result as a terminal canvas,
// Graphviz DOT, or SVG.
package graph

import (
	"math"

	"github.com/tuannvm/ultratech/internal/universe"
)

// Format specifies the output format for graph rendering.
type Format string

const (
	FormatText Format = "text"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatText, FormatDOT, FormatSVG}

// View box and circle geometry, in view box units.
const (
	ViewWidth  = 200.0
	ViewHeight = 140.0
	CenterX    = 100.0
	CenterY    = 70.0
	Radius     = 50.0
)

// Color is one entry of the node palette.
type Color struct {
	Name string
	Hex  string
}

// Palette cycles over the nodes by index.
var Palette = []Color{
	{Name: "cyan", Hex: "#22d3ee"},
	{Name: "emerald", Hex: "#10b981"},
	{Name: "violet", Hex: "#8b5cf6"},
	{Name: "rose", Hex: "#f43f5e"},
	{Name: "amber", Hex: "#fbbf24"},
}

// ColorFor returns the palette entry for the node at index i.
func ColorFor(i int) Color {
	return Palette[i%len(Palette)]
}

// Point is a position inside the view box; y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Layout places n nodes evenly on the circle, the first one at the top,
// going clockwise.
func Layout(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		points[i] = Point{
			X: CenterX + Radius*math.Cos(angle),
			Y: CenterY + Radius*math.Sin(angle),
		}
	}
	return points
}

// Edge joins the nodes at indexes From and To, From < To.
type Edge struct {
	From int
	To   int
}

// Edges returns the edges of the complete graph on n nodes.
func Edges(n int) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{From: i, To: j})
		}
	}
	return edges
}

// Node is an agent placed on the layout.
type Node struct {
	Agent universe.Agent
	Pos   Point
	Color Color
}

// Graph is the laid-out universe.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Build lays out agents in the given order.
func Build(agents []universe.Agent) Graph {
	points := Layout(len(agents))
	nodes := make([]Node, len(agents))
	for i, a := range agents {
		nodes[i] = Node{Agent: a, Pos: points[i], Color: ColorFor(i)}
	}
	return Graph{Nodes: nodes, Edges: Edges(len(agents))}
}

// Empty reports whether there is nothing to draw.
func (g Graph) Empty() bool { return len(g.Nodes) == 0 }
