package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

func TestRenderUniverseEmpty(t *testing.T) {
	out := RenderUniverse(universe.Snapshot{}, catalog.Default(), graph.DefaultOptions())

	assert.Contains(t, out, "Current State of the Universe")
	assert.Contains(t, out, "Total Agents")
	assert.Contains(t, out, universe.RateUnavailable)
	assert.NotContains(t, out, "0.0%")
	assert.Contains(t, out, "No agents to visualize")
	assert.Contains(t, out, "No agents in the system")
}

func TestRenderUniverseWithAgents(t *testing.T) {
	reg := universe.NewRegistry()
	reg.Propose("Alpha", 7)
	reg.Propose("Beta", 11)
	reg.Propose("Gamma", 13)
	reg.Propose("Delta", 9)

	out := RenderUniverse(reg.Snapshot(), catalog.Default(), graph.DefaultOptions())

	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "Rank: 7")
	assert.Contains(t, out, "Rank: 13")
	assert.Contains(t, out, string(graph.GlyphNode))
	assert.NotContains(t, out, "Delta")
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Gamma"))
}

func TestRenderUniverseFrench(t *testing.T) {
	cat, err := catalog.NewLoader("").Load("fr")
	assert.NoError(t, err)

	out := RenderUniverse(universe.Snapshot{}, cat, graph.DefaultOptions())
	assert.Contains(t, out, "Taux d'Acceptation")
	assert.Contains(t, out, "Aucun agent à visualiser")
}

func TestRenderOutcome(t *testing.T) {
	reg := universe.NewRegistry()

	assert.Contains(t, RenderOutcome(reg.Propose("Alpha", 7)), "Agent Alpha added successfully")
	assert.Contains(t, RenderOutcome(reg.Propose("Beta", 8)), "rank 8 is not a prime number")
}

func TestRenderSimulation(t *testing.T) {
	cat := catalog.Default()

	ok := RenderSimulation(simulation.Evaluate(3, 21), cat)
	assert.Contains(t, ok, "Simulation Result")
	assert.Contains(t, ok, "Rank sum = 21")
	assert.Contains(t, ok, "Collaborating agents: 3")
	assert.Contains(t, ok, "Ontological coefficient: 21")
	assert.Contains(t, ok, "System state: Stable")

	failed := RenderSimulation(simulation.Evaluate(1, 7), cat)
	assert.Contains(t, failed, "At least 2 agents")
	assert.NotContains(t, failed, "Ontological coefficient")
}
