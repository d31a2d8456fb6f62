package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	// ServerName is the MCP server name.
	ServerName = "ultratech"
	// ServerVersion is the MCP server version.
	ServerVersion = "1.0.0"
)

// ServerInstructions provides usage guidance for LLMs.
const ServerInstructions = `ULTRA-Tech simulates a small universe of named, ranked agents. The universe lives in memory for the lifetime of this server.

Admission rules, checked in order for every proposal:
1. The name must not match an existing agent's name, ignoring case
2. The rank must not be held by another agent
3. The rank must be a prime number
Every proposal counts toward the acceptance rate, whatever its outcome.

Available tools:
- propose_agent: Propose an agent with a name and a rank
- remove_agent: Remove an agent by id
- list_agents: List the admitted agents in insertion order
- get_metrics: Agent count, rank sum, proposal counters and acceptance rate
- run_simulation: Run the collaboration simulation (needs at least two agents)
- render_graph: Render the complete agent graph as text, DOT or SVG`

// ServerConfig holds configuration for creating an MCP server.
type ServerConfig struct {
	Name         string
	Version      string
	Instructions string
	Logger       *zap.Logger
	Handlers     *Handlers
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Name:         ServerName,
		Version:      ServerVersion,
		Instructions: ServerInstructions,
		Logger:       zap.NewNop(),
		Handlers:     NewHandlers(),
	}
}

// Server represents the MCP server with all components.
type Server struct {
	mcpServer *mcp.Server
	config    *ServerConfig
}

// NewServer creates a new MCP server instance with all components.
func NewServer(cfg *ServerConfig) *Server {
	if cfg == nil {
		cfg = DefaultServerConfig()
	}
	if cfg.Name == "" {
		cfg.Name = ServerName
	}
	if cfg.Version == "" {
		cfg.Version = ServerVersion
	}
	if cfg.Instructions == "" {
		cfg.Instructions = ServerInstructions
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Handlers == nil {
		cfg.Handlers = NewHandlers()
	}
	cfg.Handlers.WithLogger(cfg.Logger)

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		&mcp.ServerOptions{
			Instructions: cfg.Instructions,
		},
	)

	// Register all tools
	registerTools(mcpServer, cfg.Handlers)

	return &Server{
		mcpServer: mcpServer,
		config:    cfg,
	}
}

// ServeStdio runs the MCP server on the STDIO transport until ctx ends or
// the client disconnects.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.config.Logger.Info("starting MCP server on stdio transport",
		zap.String("name", s.config.Name),
		zap.String("version", s.config.Version))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, transport, nil)
}

// boolPtr creates a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// registerTools registers all ultratech tools with the MCP server.
func registerTools(server *mcp.Server, h *Handlers) {
	registerProposeAgentTool(server, h)
	registerRemoveAgentTool(server, h)
	registerListAgentsTool(server, h)
	registerGetMetricsTool(server, h)
	registerRunSimulationTool(server, h)
	registerRenderGraphTool(server, h)
}

func registerProposeAgentTool(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "propose_agent",
			Description: "Propose an agent to the universe. The proposal is counted and then accepted only if the name is new (ignoring case), the rank is free, and the rank is prime. The outcome reason is one of accepted, empty_name, duplicate_name, duplicate_rank, not_prime.",
			Annotations: &mcp.ToolAnnotations{
				Title:           "Propose Agent",
				ReadOnlyHint:    false,
				DestructiveHint: boolPtr(false),
				IdempotentHint:  false,
				OpenWorldHint:   boolPtr(false),
			},
		},
		func(ctx context.Context, req *mcp.CallToolRequest, input ProposeAgentInput) (*mcp.CallToolResult, ProposeAgentOutput, error) {
			return nil, h.ProposeAgent(ctx, input), nil
		},
	)
}

func registerRemoveAgentTool(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "remove_agent",
			Description: "Remove an agent by id. Removing an unknown id does nothing. Proposal counters are not affected.",
			Annotations: &mcp.ToolAnnotations{
				Title:           "Remove Agent",
				ReadOnlyHint:    false,
				DestructiveHint: boolPtr(true),
				IdempotentHint:  true,
				OpenWorldHint:   boolPtr(false),
			},
		},
		func(ctx context.Context, req *mcp.CallToolRequest, input RemoveAgentInput) (*mcp.CallToolResult, RemoveAgentOutput, error) {
			return nil, h.RemoveAgent(ctx, input), nil
		},
	)
}

func registerListAgentsTool(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_agents",
			Description: "List the admitted agents with their ids, names and ranks, in insertion order.",
			Annotations: &mcp.ToolAnnotations{
				Title:          "List Agents",
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
			},
		},
		func(ctx context.Context, req *mcp.CallToolRequest, input ListAgentsInput) (*mcp.CallToolResult, ListAgentsOutput, error) {
			return nil, h.ListAgents(ctx, input), nil
		},
	)
}

func registerGetMetricsTool(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_metrics",
			Description: "Get the agent count, the rank sum, the proposal counters and the acceptance rate. The rate is undefined (rate_text N/A) before any proposal.",
			Annotations: &mcp.ToolAnnotations{
				Title:          "Get Metrics",
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
			},
		},
		func(ctx context.Context, req *mcp.CallToolRequest, input GetMetricsInput) (*mcp.CallToolResult, GetMetricsOutput, error) {
			return nil, h.GetMetrics(ctx, input), nil
		},
	)
}

func registerRunSimulationTool(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "run_simulation",
			Description: "Run the collaboration simulation over the current agents. It fails with fewer than two agents; otherwise the ontological coefficient is the rank sum and the system state is Stable. The result arrives after a short delay.",
			Annotations: &mcp.ToolAnnotations{
				Title:          "Run Simulation",
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
			},
		},
		func(ctx context.Context, req *mcp.CallToolRequest, input RunSimulationInput) (*mcp.CallToolResult, RunSimulationOutput, error) {
			output, err := h.RunSimulation(ctx, input)
			return nil, output, err
		},
	)
}

func registerRenderGraphTool(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "render_graph",
			Description: "Render the agents on a circle, every pair joined by an edge. Formats: text (terminal canvas), dot (Graphviz, pinned positions), svg.",
			Annotations: &mcp.ToolAnnotations{
				Title:          "Render Graph",
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
			},
		},
		func(ctx context.Context, req *mcp.CallToolRequest, input RenderGraphInput) (*mcp.CallToolResult, RenderGraphOutput, error) {
			output, err := h.RenderGraph(ctx, input)
			return nil, output, err
		},
	)
}
