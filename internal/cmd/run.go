package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/config"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/tui"
	"github.com/tuannvm/ultratech/internal/universe"
)

var (
	runSimulate bool
	runGraph    string
	runOutput   string
)

var runCmd = &cobra.Command{
	Use:   "run [NAME:RANK...]",
	Short: "Replay proposals and print the resulting universe",
	Long: `Submit each NAME:RANK proposal in order to a fresh universe, then print
every outcome, the admitted agents, and the metrics.

The rank is everything after the last colon. A rank that is not an integer
is still counted as a proposal and rejected.`,
	Example: `  ultratech run Alpha:7 Beta:11
  ultratech run Alpha:7 Beta:11 Gamma:13 --simulate
  ultratech run Alpha:7 Beta:11 --graph dot -o universe.dot`,
	RunE: runProposals,
}

func init() {
	runCmd.Flags().BoolVarP(&runSimulate, "simulate", "s", false, "run the collaboration simulation afterwards")
	runCmd.Flags().StringVarP(&runGraph, "graph", "g", "",
		fmt.Sprintf("render the agent graph (%s)", strings.Join(config.OptionValues(config.GraphFormatOptions), ", ")))
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the graph to this file instead of stdout")
}

func runProposals(cmd *cobra.Command, args []string) error {
	opts := config.DefaultRunOptions(cfg)
	opts.Proposals = args
	opts.Simulate = runSimulate
	opts.GraphFormat = runGraph
	opts.GraphOutput = runOutput
	opts.ConfigPath = configPath
	opts.Verbosity = verbosity()

	return executeRun(cmd.Context(), opts)
}

type proposal struct {
	name string
	rank string
}

// parseProposal splits NAME:RANK at the last colon.
func parseProposal(arg string) (proposal, error) {
	i := strings.LastIndex(arg, ":")
	if i < 0 {
		return proposal{}, fmt.Errorf("invalid proposal %q: expected NAME:RANK", arg)
	}
	return proposal{
		name: strings.TrimSpace(arg[:i]),
		rank: strings.TrimSpace(arg[i+1:]),
	}, nil
}

func executeRun(ctx context.Context, opts config.RunOptions) error {
	var format graph.Format
	if opts.GraphFormat != "" {
		f, err := graph.ParseFormat(opts.GraphFormat)
		if err != nil {
			return err
		}
		format = f
	} else if opts.GraphOutput != "" {
		return errors.New("--output requires --graph")
	}

	// Validate every argument before touching the universe
	proposals := make([]proposal, 0, len(opts.Proposals))
	for _, arg := range opts.Proposals {
		p, err := parseProposal(arg)
		if err != nil {
			return err
		}
		proposals = append(proposals, p)
	}

	cat, err := loadCatalog(opts.Locale)
	if err != nil {
		return err
	}
	reg := newRegistry(cat)

	if opts.ConfigPath != "" {
		logVerbose("Using config %s", opts.ConfigPath)
	}
	logVerbose("Replaying %d proposal(s) with locale %s", len(proposals), cat.Locale)
	for _, p := range proposals {
		out := reg.ProposeText(p.name, p.rank)
		logInfo("%s", outcomeLine(out))
	}

	snap := reg.Snapshot()
	if !opts.IsQuiet() {
		if len(proposals) > 0 {
			logInfo("")
		}
		printer.Raw(formatSummary(snap, cat))
	}

	if format != "" {
		if err := writeGraph(snap.Agents, format, graphOptions(cat), opts.GraphOutput, cat); err != nil {
			return err
		}
	}

	if opts.Simulate {
		m := snap.Metrics()
		res, err := newRunner(cat).Run(ctx, m.AgentCount, m.TotalRank)
		if err != nil {
			return fmt.Errorf("simulation interrupted: %w", err)
		}
		logger.Info("simulation finished",
			zap.Stringer("outcome", res.Outcome),
			zap.Int("agents", res.AgentCount),
			zap.Int("coefficient", res.Coefficient))
		logInfo("")
		logInfo("%s", tui.RenderSimulation(res, cat))
	}

	return nil
}

func outcomeLine(out universe.Outcome) string {
	if out.Success {
		return tui.SuccessStyle().Render("✓ " + out.Message)
	}
	return tui.FailureStyle().Render("✗ " + out.Message)
}

// formatSummary lists the admitted agents as a table followed by the metrics.
func formatSummary(snap universe.Snapshot, cat *catalog.Catalog) string {
	var buf bytes.Buffer

	if len(snap.Agents) == 0 {
		buf.WriteString(cat.Label(catalog.KeyLabelNoAgents))
		buf.WriteString("\n")
	} else {
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "ID\t%s\t%s\n",
			strings.ToUpper(cat.Label(catalog.KeyLabelName)),
			strings.ToUpper(cat.Label(catalog.KeyLabelRank)))
		for _, a := range snap.Agents {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", a.ID, a.Name, a.Rank)
		}
		_ = w.Flush()
	}

	m := snap.Metrics()
	_, _ = fmt.Fprintf(&buf, "\n%s: %d\n", cat.Label(catalog.KeyLabelTotalAgents), m.AgentCount)
	_, _ = fmt.Fprintf(&buf, "%s: %s (%d/%d)\n",
		cat.Label(catalog.KeyLabelAcceptanceRate), m.RateText(), m.AcceptedProposals, m.TotalProposals)
	return buf.String()
}

func writeGraph(agents []universe.Agent, format graph.Format, opts graph.Options, path string, cat *catalog.Catalog) error {
	content, err := graph.Render(agents, format, opts)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if path == "" {
		logInfo("")
		printer.Raw(content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	logger.Info("graph written", zap.String("path", path), zap.String("format", string(format)))
	logInfo("%s", cat.Text(catalog.KeyLabelGraphWritten, catalog.Variables{Name: path}))
	return nil
}
