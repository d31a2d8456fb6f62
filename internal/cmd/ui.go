package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/tui"
)

var accessible bool

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive dashboard",
	Long: `Open the single-screen dashboard: propose and remove agents, watch the
metrics and the agent graph, run the collaboration simulation, and export
the graph.

Accessible mode is enabled automatically when stdin is not a terminal.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runUI,
}

func init() {
	uiCmd.Flags().BoolVar(&accessible, "accessible", false, "accessible mode (plain prompts, no screen clearing)")
}

func runUI(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cfg.Locale)
	if err != nil {
		return err
	}

	result, err := tui.RunDashboard(tui.DashboardOptions{
		Config:     cfg,
		Catalog:    cat,
		Registry:   newRegistry(cat),
		Runner:     newRunner(cat),
		Logger:     logger,
		Accessible: accessible,
		Out:        cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	m := result.Snapshot.Metrics()
	logger.Info("dashboard closed",
		zap.Bool("cancelled", result.Cancelled),
		zap.Int("agents", m.AgentCount),
		zap.Int("proposals", m.TotalProposals),
		zap.Int("simulations", result.Simulations))

	logInfo("%s: %d  %s: %s",
		cat.Label(catalog.KeyLabelTotalAgents), m.AgentCount,
		cat.Label(catalog.KeyLabelAcceptanceRate), m.RateText())
	return nil
}
