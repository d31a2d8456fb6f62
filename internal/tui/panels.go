package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

// RenderUniverse renders the universe panel: metric tiles, the agent graph,
// and the list of active agents.
func RenderUniverse(snap universe.Snapshot, cat *catalog.Catalog, opts graph.Options) string {
	m := snap.Metrics()

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		tile(cat.Label(catalog.KeyLabelTotalAgents), fmt.Sprintf("%d", m.AgentCount), ColorPrimary),
		tile(cat.Label(catalog.KeyLabelAcceptanceRate), m.RateText(), ColorSuccess),
	)

	var b strings.Builder
	b.WriteString(HeaderStyle().Render(cat.Label(catalog.KeyTitleUniverse)))
	b.WriteString("\n")
	b.WriteString(tiles)
	b.WriteString("\n\n")
	b.WriteString(renderGraph(snap.Agents, cat, opts))
	b.WriteString("\n\n")
	b.WriteString(TitleStyle().Render(cat.Label(catalog.KeyLabelActiveAgents)))
	b.WriteString("\n")
	b.WriteString(renderAgentList(snap.Agents, cat))
	return b.String()
}

func tile(label, value string, color lipgloss.Color) string {
	body := MutedStyle().Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(value)
	return TileStyle().Render(body)
}

func renderGraph(agents []universe.Agent, cat *catalog.Catalog, opts graph.Options) string {
	g := graph.Build(agents)
	if g.Empty() {
		return MutedStyle().Italic(true).Render(cat.Label(catalog.KeyLabelNoGraph))
	}

	lines := g.Canvas(opts.Width, opts.Height).Lines(func(text string, color int) string {
		if strings.TrimSpace(text) == "" {
			return text
		}
		return NodeStyle(color).Render(text)
	})
	return strings.Join(lines, "\n")
}

func renderAgentList(agents []universe.Agent, cat *catalog.Catalog) string {
	if len(agents) == 0 {
		return MutedStyle().Italic(true).Render(cat.Label(catalog.KeyLabelNoAgents))
	}

	rank := cat.Label(catalog.KeyLabelRank)
	lines := make([]string, len(agents))
	for i, a := range agents {
		bullet := NodeStyle(i % len(graph.Palette)).Render("●")
		lines[i] = fmt.Sprintf("%s %s  %s",
			bullet, a.Name, TitleStyle().Render(fmt.Sprintf("%s: %d", rank, a.Rank)))
	}
	return strings.Join(lines, "\n")
}

// RenderOutcome renders the last proposal outcome, styled from Success only.
func RenderOutcome(out universe.Outcome) string {
	return ResultStyle(out.Success).Render(out.Message)
}

// RenderSimulation renders a collaboration result with its details block.
func RenderSimulation(res simulation.Result, cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(res.Detail)

	if res.Succeeded() {
		b.WriteString("\n\n")
		b.WriteString(MutedStyle().Render(cat.Label(catalog.KeyLabelCollaborationDetails)))
		b.WriteString(fmt.Sprintf("\n• %s: %d", cat.Label(catalog.KeyLabelCollaborators), res.AgentCount))
		b.WriteString(fmt.Sprintf("\n• %s: %d", cat.Label(catalog.KeyLabelCoefficient), res.Coefficient))
		b.WriteString(fmt.Sprintf("\n• %s: %s", cat.Label(catalog.KeyLabelSystemState), SuccessStyle().Render(res.State)))
	}

	return TitleStyle().Render(cat.Label(catalog.KeyLabelSimulationResult)) + "\n" +
		ResultStyle(res.Succeeded()).Render(b.String())
}
