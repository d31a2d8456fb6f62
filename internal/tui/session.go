package tui

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

// Session holds the dashboard's universe and what it last showed.
type Session struct {
	registry  *universe.Registry
	runner    *simulation.Runner
	catalog   *catalog.Catalog
	graphOpts graph.Options
	logger    *zap.Logger

	lastOutcome *universe.Outcome
	lastResult  *simulation.Result
	notice      string
	noticeErr   bool
}

// NewSession wires a dashboard session. A nil logger is replaced by a no-op one.
func NewSession(reg *universe.Registry, runner *simulation.Runner, cat *catalog.Catalog, graphOpts graph.Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if graphOpts.EmptyLabel == "" {
		graphOpts.EmptyLabel = cat.Label(catalog.KeyLabelNoGraph)
	}
	return &Session{
		registry:  reg,
		runner:    runner,
		catalog:   cat,
		graphOpts: graphOpts,
		logger:    logger,
	}
}

// Propose submits a proposal from the form. The name is trimmed first.
func (s *Session) Propose(name, rank string) universe.Outcome {
	out := s.registry.ProposeText(strings.TrimSpace(name), rank)
	s.lastOutcome = &out
	s.notice, s.noticeErr = "", false
	s.logger.Info("proposal",
		zap.Bool("success", out.Success),
		zap.Stringer("reason", out.Reason))
	return out
}

// Remove deletes an agent by id.
func (s *Session) Remove(id string) bool {
	removed := s.registry.Remove(id)
	s.logger.Info("remove", zap.String("id", id), zap.Bool("removed", removed))
	return removed
}

// Agents returns the current agents in display order.
func (s *Session) Agents() []universe.Agent {
	return s.registry.Snapshot().Agents
}

// Simulate triggers a simulation over the current metrics.
func (s *Session) Simulate() (<-chan simulation.Result, error) {
	m := s.registry.Snapshot().Metrics()
	return s.runner.Trigger(m.AgentCount, m.TotalRank)
}

// RecordSimulation keeps res for display.
func (s *Session) RecordSimulation(res simulation.Result) {
	s.lastResult = &res
	s.logger.Info("simulation",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("agents", res.AgentCount),
		zap.Int("coefficient", res.Coefficient))
}

// ExportGraph renders the current graph in format and writes it to path.
func (s *Session) ExportGraph(format graph.Format, path string) error {
	out, err := graph.Render(s.Agents(), format, s.graphOpts)
	if err == nil {
		if werr := os.WriteFile(path, []byte(out), 0644); werr != nil {
			err = fmt.Errorf("failed to write graph: %w", werr)
		}
	}
	if err != nil {
		s.notice, s.noticeErr = err.Error(), true
		s.logger.Warn("graph export failed", zap.Error(err))
		return err
	}
	s.notice, s.noticeErr = s.catalog.Text(catalog.KeyLabelGraphWritten, catalog.Variables{Name: path}), false
	s.logger.Info("graph exported", zap.String("format", string(format)), zap.String("path", path))
	return nil
}

// DefaultExportPath returns the file name suggested for format.
func DefaultExportPath(format graph.Format) string {
	if format == graph.FormatText {
		return "universe.txt"
	}
	return "universe." + string(format)
}

// View renders the whole dashboard screen above the action form.
func (s *Session) View() string {
	var b strings.Builder
	b.WriteString(Banner())
	b.WriteString("\n")
	b.WriteString(RenderUniverse(s.registry.Snapshot(), s.catalog, s.graphOpts))
	b.WriteString("\n\n")

	if s.lastOutcome != nil {
		b.WriteString(RenderOutcome(*s.lastOutcome))
		b.WriteString("\n\n")
	}

	b.WriteString(HeaderStyle().Render(s.catalog.Label(catalog.KeyTitleSimulation)))
	b.WriteString("\n")
	if s.lastResult != nil {
		b.WriteString(RenderSimulation(*s.lastResult, s.catalog))
	} else {
		b.WriteString(MutedStyle().Render(s.catalog.Label(catalog.KeyLabelSimulationIdle)))
	}
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString("\n")
		style := SuccessStyle()
		if s.noticeErr {
			style = FailureStyle()
		}
		b.WriteString(style.Render(s.notice))
		b.WriteString("\n")
	}
	return b.String()
}
