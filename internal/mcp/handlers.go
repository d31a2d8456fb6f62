package mcp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

// Handlers provides the business logic for MCP tool handlers.
// It can be used standalone or injected into the MCP server.
type Handlers struct {
	registry  *universe.Registry
	runner    *simulation.Runner
	catalog   *catalog.Catalog
	graphOpts graph.Options
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance over an empty universe.
func NewHandlers() *Handlers {
	cat := catalog.Default()
	return &Handlers{
		registry:  universe.NewRegistry(universe.WithMessages(cat.ProposalMessages())),
		runner:    simulation.NewRunner(simulation.WithDetail(cat.SimulationDetail())),
		catalog:   cat,
		graphOpts: graph.DefaultOptions(),
		logger:    zap.NewNop(),
	}
}

// WithRegistry sets the universe the tools operate on.
func (h *Handlers) WithRegistry(reg *universe.Registry) *Handlers {
	h.registry = reg
	return h
}

// WithRunner sets the simulation runner.
func (h *Handlers) WithRunner(runner *simulation.Runner) *Handlers {
	h.runner = runner
	return h
}

// WithCatalog sets the message catalog used for labels.
func (h *Handlers) WithCatalog(cat *catalog.Catalog) *Handlers {
	h.catalog = cat
	h.graphOpts.EmptyLabel = cat.Label(catalog.KeyLabelNoGraph)
	return h
}

// WithGraphOptions sets the graph rendering options.
func (h *Handlers) WithGraphOptions(opts graph.Options) *Handlers {
	if opts.EmptyLabel == "" {
		opts.EmptyLabel = h.graphOpts.EmptyLabel
	}
	h.graphOpts = opts
	return h
}

// WithLogger sets the logger.
func (h *Handlers) WithLogger(logger *zap.Logger) *Handlers {
	if logger != nil {
		h.logger = logger
	}
	return h
}

func toAgentInfo(a universe.Agent) AgentInfo {
	return AgentInfo{ID: a.ID, Name: a.Name, Rank: a.Rank}
}

// ProposeAgent submits a proposal to the universe. The name is trimmed first,
// as the CLI and dashboard do.
func (h *Handlers) ProposeAgent(ctx context.Context, input ProposeAgentInput) ProposeAgentOutput {
	name := strings.TrimSpace(input.Name)
	out := h.registry.Propose(name, input.Rank)

	h.logger.Info("propose_agent",
		zap.String("name", name),
		zap.Int("rank", input.Rank),
		zap.Bool("success", out.Success),
		zap.Stringer("reason", out.Reason))

	output := ProposeAgentOutput{
		Success:           out.Success,
		Reason:            out.Reason.String(),
		Message:           out.Message,
		TotalProposals:    out.TotalProposals,
		AcceptedProposals: out.AcceptedProposals,
	}
	if out.Agent != nil {
		info := toAgentInfo(*out.Agent)
		output.Agent = &info
	}
	return output
}

// RemoveAgent removes an agent by id. Unknown ids are not an error.
func (h *Handlers) RemoveAgent(ctx context.Context, input RemoveAgentInput) RemoveAgentOutput {
	removed := h.registry.Remove(input.ID)
	h.logger.Info("remove_agent", zap.String("id", input.ID), zap.Bool("removed", removed))
	return RemoveAgentOutput{ID: input.ID, Removed: removed}
}

// ListAgents returns the admitted agents in insertion order.
func (h *Handlers) ListAgents(ctx context.Context, input ListAgentsInput) ListAgentsOutput {
	snap := h.registry.Snapshot()
	agents := make([]AgentInfo, len(snap.Agents))
	for i, a := range snap.Agents {
		agents[i] = toAgentInfo(a)
	}
	return ListAgentsOutput{Agents: agents}
}

// GetMetrics returns the universe metrics.
func (h *Handlers) GetMetrics(ctx context.Context, input GetMetricsInput) GetMetricsOutput {
	m := h.registry.Snapshot().Metrics()
	return GetMetricsOutput{
		AgentCount:        m.AgentCount,
		TotalRank:         m.TotalRank,
		TotalProposals:    m.TotalProposals,
		AcceptedProposals: m.AcceptedProposals,
		AcceptanceRate:    m.Rate,
		RateDefined:       m.RateDefined,
		RateText:          m.RateText(),
	}
}

// RunSimulation runs the collaboration simulation over the current agents and
// waits for the result. A simulation already pending is reported in Error.
func (h *Handlers) RunSimulation(ctx context.Context, input RunSimulationInput) (RunSimulationOutput, error) {
	m := h.registry.Snapshot().Metrics()

	res, err := h.runner.Run(ctx, m.AgentCount, m.TotalRank)
	if errors.Is(err, simulation.ErrBusy) {
		return RunSimulationOutput{Outcome: simulation.Failure.String(), AgentCount: m.AgentCount, Error: err.Error()}, nil
	}
	if err != nil {
		return RunSimulationOutput{}, err
	}

	h.logger.Info("run_simulation",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("agents", res.AgentCount),
		zap.Int("coefficient", res.Coefficient))

	return RunSimulationOutput{
		Success:     res.Succeeded(),
		Outcome:     res.Outcome.String(),
		AgentCount:  res.AgentCount,
		Coefficient: res.Coefficient,
		State:       res.State,
		Detail:      res.Detail,
	}, nil
}

// RenderGraph renders the current agents in the requested format.
func (h *Handlers) RenderGraph(ctx context.Context, input RenderGraphInput) (RenderGraphOutput, error) {
	name := input.Format
	if name == "" {
		name = string(graph.FormatSVG)
	}
	format, err := graph.ParseFormat(name)
	if err != nil {
		return RenderGraphOutput{}, err
	}

	content, err := graph.Render(h.registry.Snapshot().Agents, format, h.graphOpts)
	if err != nil {
		return RenderGraphOutput{}, err
	}
	return RenderGraphOutput{Format: string(format), Content: content}, nil
}
