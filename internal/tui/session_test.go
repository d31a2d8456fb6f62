package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/clock"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

func newTestSession(t *testing.T) (*Session, *clock.FakeClock) {
	t.Helper()
	cat := catalog.Default()
	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	reg := universe.NewRegistry(universe.WithMessages(cat.ProposalMessages()))
	runner := simulation.NewRunner(simulation.WithClock(fake), simulation.WithDetail(cat.SimulationDetail()))
	return NewSession(reg, runner, cat, graph.DefaultOptions(), nil), fake
}

func TestSessionProposeTrimsName(t *testing.T) {
	s, _ := newTestSession(t)

	out := s.Propose("  Alpha  ", "7")
	require.True(t, out.Success)
	assert.Equal(t, "Alpha", out.Agent.Name)

	// Case-insensitive duplicate after trimming
	out = s.Propose("alpha", "11")
	assert.Equal(t, universe.ReasonDuplicateName, out.Reason)

	assert.Contains(t, s.View(), "already exists")
}

func TestSessionRemove(t *testing.T) {
	s, _ := newTestSession(t)
	out := s.Propose("Alpha", "7")

	assert.True(t, s.Remove(out.Agent.ID))
	assert.False(t, s.Remove(out.Agent.ID))
	assert.Empty(t, s.Agents())
}

func TestSessionSimulate(t *testing.T) {
	s, fake := newTestSession(t)
	s.Propose("Alpha", "7")
	s.Propose("Beta", "11")

	assert.Contains(t, s.View(), "Run simulation")

	results, err := s.Simulate()
	require.NoError(t, err)

	_, err = s.Simulate()
	assert.ErrorIs(t, err, simulation.ErrBusy)

	fake.Advance(simulation.DefaultDelay)
	res := <-results
	s.RecordSimulation(res)

	assert.True(t, res.Succeeded())
	assert.Equal(t, 18, res.Coefficient)
	assert.Contains(t, s.View(), "Rank sum = 18")
}

func TestSessionExportGraph(t *testing.T) {
	s, _ := newTestSession(t)
	s.Propose("Alpha", "7")
	s.Propose("Beta", "11")

	dir := t.TempDir()
	for _, f := range graph.Formats {
		path := filepath.Join(dir, DefaultExportPath(f))
		require.NoError(t, s.ExportGraph(f, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Alpha")
	}
	assert.Contains(t, s.View(), "Graph written to")

	err := s.ExportGraph(graph.FormatSVG, filepath.Join(dir, "missing", "universe.svg"))
	assert.Error(t, err)
	assert.Contains(t, s.View(), "failed to write graph")
}

func TestDefaultExportPath(t *testing.T) {
	tests := map[graph.Format]string{
		graph.FormatText: "universe.txt",
		graph.FormatDOT:  "universe.dot",
		graph.FormatSVG:  "universe.svg",
	}
	for format, want := range tests {
		if got := DefaultExportPath(format); got != want {
			t.Errorf("DefaultExportPath(%q) = %q, want %q", format, got, want)
		}
	}
}
