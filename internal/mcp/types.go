// Package mcp provides MCP (Model Context Protocol) server functionality for ultratech.
// It exposes one in-memory agent universe per server process as MCP tools.
package mcp

// AgentInfo describes an admitted agent.
type AgentInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// ProposeAgentInput defines parameters for proposing an agent.
type ProposeAgentInput struct {
	Name string `json:"name" jsonschema:"Agent name, unique regardless of case"`
	Rank int    `json:"rank" jsonschema:"Agent rank, a prime number not held by another agent"`
}

// ProposeAgentOutput contains the outcome of a proposal.
type ProposeAgentOutput struct {
	Success           bool       `json:"success"`
	Reason            string     `json:"reason"`
	Message           string     `json:"message"`
	Agent             *AgentInfo `json:"agent,omitempty"`
	TotalProposals    int        `json:"total_proposals"`
	AcceptedProposals int        `json:"accepted_proposals"`
}

// RemoveAgentInput defines parameters for removing an agent.
type RemoveAgentInput struct {
	ID string `json:"id" jsonschema:"Identifier of the agent to remove, as returned by propose_agent or list_agents"`
}

// RemoveAgentOutput reports whether an agent was removed.
type RemoveAgentOutput struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// ListAgentsInput defines parameters for listing agents.
type ListAgentsInput struct{}

// ListAgentsOutput contains the admitted agents in insertion order.
type ListAgentsOutput struct {
	Agents []AgentInfo `json:"agents"`
}

// GetMetricsInput defines parameters for reading metrics.
type GetMetricsInput struct{}

// GetMetricsOutput contains the universe metrics.
type GetMetricsOutput struct {
	AgentCount        int     `json:"agent_count"`
	TotalRank         int     `json:"total_rank"`
	TotalProposals    int     `json:"total_proposals"`
	AcceptedProposals int     `json:"accepted_proposals"`
	AcceptanceRate    float64 `json:"acceptance_rate"`
	RateDefined       bool    `json:"rate_defined"`
	RateText          string  `json:"rate_text"`
}

// RunSimulationInput defines parameters for running the collaboration simulation.
type RunSimulationInput struct{}

// RunSimulationOutput contains the collaboration result.
type RunSimulationOutput struct {
	Success     bool   `json:"success"`
	Outcome     string `json:"outcome"`
	AgentCount  int    `json:"agent_count"`
	Coefficient int    `json:"coefficient,omitempty"`
	State       string `json:"state,omitempty"`
	Detail      string `json:"detail"`
	Error       string `json:"error,omitempty"`
}

// RenderGraphInput defines parameters for rendering the agent graph.
type RenderGraphInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: text, dot or svg (default: svg)"`
}

// RenderGraphOutput contains the rendered graph.
type RenderGraphOutput struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}
