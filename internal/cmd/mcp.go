package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	ultramcp "github.com/tuannvm/ultratech/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the universe over MCP (stdio)",
	Long: `Start a Model Context Protocol server on stdin/stdout.

The server holds one in-memory universe for its lifetime and exposes the
propose_agent, remove_agent, list_agents, get_metrics, run_simulation and
render_graph tools. Logs go to stderr or to log_file.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if err := server.ServeStdio(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("MCP server shut down")
	return nil
}

// newMCPServer builds an MCP server over a fresh universe using the loaded
// config, messages and logger.
func newMCPServer() (*ultramcp.Server, error) {
	cat, err := loadCatalog(cfg.Locale)
	if err != nil {
		return nil, err
	}

	handlers := ultramcp.NewHandlers().
		WithCatalog(cat).
		WithRegistry(newRegistry(cat)).
		WithRunner(newRunner(cat)).
		WithGraphOptions(graphOptions(cat))

	return ultramcp.NewServer(&ultramcp.ServerConfig{
		Version:  version,
		Logger:   logger,
		Handlers: handlers,
	}), nil
}
