package graph

import (
	"fmt"
	"math"
	"strings"
)

// Glyphs used on the terminal canvas.
const (
	GlyphNode  = '●'
	GlyphEdge  = '·'
	GlyphBlank = ' '
)

// NoColor marks canvas cells that belong to no node.
const NoColor = -1

// Cell is one character of the canvas. Color indexes Palette, or is NoColor.
type Cell struct {
	Rune  rune
	Color int
}

// Canvas is a character grid approximation of the view box.
type Canvas struct {
	Width  int
	Height int
	cells  [][]Cell
}

// Canvas rasterizes the graph onto a width x height character grid.
// Dimensions below 8x4 are raised to that minimum.
func (g Graph) Canvas(width, height int) *Canvas {
	c := newCanvas(max(width, 8), max(height, 4))

	cols := make([]int, len(g.Nodes))
	rows := make([]int, len(g.Nodes))
	for i, n := range g.Nodes {
		cols[i], rows[i] = c.project(n.Pos)
	}

	for _, e := range g.Edges {
		c.line(cols[e.From], rows[e.From], cols[e.To], rows[e.To])
	}

	// Labels first so node glyphs always win
	for i, n := range g.Nodes {
		color := i % len(Palette)
		c.label(cols[i], rows[i]-1, n.Agent.Name, color)
		c.label(cols[i], rows[i]+1, fmt.Sprintf("R:%d", n.Agent.Rank), color)
	}
	for i := range g.Nodes {
		c.set(cols[i], rows[i], Cell{Rune: GlyphNode, Color: i % len(Palette)})
	}
	return c
}

func newCanvas(width, height int) *Canvas {
	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
		for col := range cells[r] {
			cells[r][col] = Cell{Rune: GlyphBlank, Color: NoColor}
		}
	}
	return &Canvas{Width: width, Height: height, cells: cells}
}

// project maps a view box point to the nearest cell.
func (c *Canvas) project(p Point) (col, row int) {
	col = int(math.Round(p.X / ViewWidth * float64(c.Width-1)))
	row = int(math.Round(p.Y / ViewHeight * float64(c.Height-1)))
	return col, row
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.Width && row >= 0 && row < c.Height
}

func (c *Canvas) set(col, row int, cell Cell) {
	if c.inside(col, row) {
		c.cells[row][col] = cell
	}
}

// line draws an edge with Bresenham's algorithm, leaving endpoints to the nodes.
func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if c.inside(x0, y0) && c.cells[y0][x0].Rune == GlyphBlank {
			c.cells[y0][x0] = Cell{Rune: GlyphEdge, Color: NoColor}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// label writes text centred on col, clipped to the canvas.
func (c *Canvas) label(col, row int, text string, color int) {
	runes := []rune(text)
	start := col - len(runes)/2
	start = max(0, min(start, c.Width-len(runes)))
	for i, r := range runes {
		c.set(start+i, row, Cell{Rune: r, Color: color})
	}
}

// Cell returns the cell at col, row.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Rune: GlyphBlank, Color: NoColor}
	}
	return c.cells[row][col]
}

// Lines renders each row through paint, which receives runs of cells
// sharing a color.
func (c *Canvas) Lines(paint func(text string, color int) string) []string {
	lines := make([]string, c.Height)
	for r, row := range c.cells {
		var b strings.Builder
		start := 0
		for i := 1; i <= len(row); i++ {
			if i == len(row) || row[i].Color != row[start].Color {
				run := make([]rune, 0, i-start)
				for _, cell := range row[start:i] {
					run = append(run, cell.Rune)
				}
				b.WriteString(paint(string(run), row[start].Color))
				start = i
			}
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	plain := func(text string, _ int) string { return text }
	return strings.Join(c.Lines(plain), "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
