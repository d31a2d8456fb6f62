package graph

import (
	"fmt"

	"github.com/tuannvm/ultratech/internal/universe"
)

// Options control rendering.
type Options struct {
	// Width and Height size the terminal canvas.
	Width  int
	Height int
	// EmptyLabel is shown when there are no agents.
	EmptyLabel string
}

// DefaultOptions returns the canvas size used when none is configured.
func DefaultOptions() Options {
	return Options{Width: 48, Height: 16, EmptyLabel: "No agents to visualize"}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (use 'text', 'dot', or 'svg')", s)
}

// Render lays out agents and renders them in format.
func Render(agents []universe.Agent, format Format, opts Options) (string, error) {
	g := Build(agents)
	switch format {
	case FormatText:
		if g.Empty() {
			return opts.EmptyLabel + "\n", nil
		}
		return g.Canvas(opts.Width, opts.Height).String() + "\n", nil
	case FormatDOT:
		return g.DOT(), nil
	case FormatSVG:
		return g.SVG(opts.EmptyLabel), nil
	default:
		return "", fmt.Errorf("unsupported format %q (use 'text', 'dot', or 'svg')", format)
	}
}
