package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/config"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

// Dashboard actions
const (
	ActionPropose  = "propose"
	ActionRemove   = "remove"
	ActionSimulate = "simulate"
	ActionExport   = "export"
	ActionQuit     = "quit"
)

// DashboardResult summarizes a dashboard session
type DashboardResult struct {
	Snapshot    universe.Snapshot
	Simulations int
	Cancelled   bool
}

// DashboardOptions configures the dashboard
type DashboardOptions struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Registry   *universe.Registry
	Runner     *simulation.Runner
	Logger     *zap.Logger
	Accessible bool
	Out        io.Writer
}

// RunDashboard displays the interactive single-screen dashboard until the
// user quits.
func RunDashboard(opts DashboardOptions) (*DashboardResult, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = universe.NewRegistry(universe.WithMessages(cat.ProposalMessages()))
	}
	runner := opts.Runner
	if runner == nil {
		runner = simulation.NewRunner(
			simulation.WithDelay(cfg.SimulationDelay()),
			simulation.WithDetail(cat.SimulationDetail()),
		)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	// Auto-enable accessible mode for non-terminals
	accessible := opts.Accessible || cfg.Accessible || !isTerminal()

	session := NewSession(reg, runner, cat, graph.Options{
		Width:  cfg.Graph.Width,
		Height: cfg.Graph.Height,
	}, opts.Logger)

	result := &DashboardResult{}

	// === Main loop ===
	for {
		action := ActionPropose

		if !accessible {
			_, _ = fmt.Fprint(out, "\033[H\033[2J") // Clear screen
		}
		_, _ = fmt.Fprintln(out, session.View())

		actionOptions := []huh.Option[string]{
			huh.NewOption("＋ "+cat.Label(catalog.KeyActionPropose), ActionPropose),
		}
		if len(session.Agents()) > 0 {
			actionOptions = append(actionOptions, huh.NewOption("✕ "+cat.Label(catalog.KeyActionRemove), ActionRemove))
		}
		actionOptions = append(actionOptions,
			huh.NewOption("✦ "+cat.Label(catalog.KeyActionSimulate), ActionSimulate),
			huh.NewOption("⇩ "+cat.Label(catalog.KeyActionExport), ActionExport),
			huh.NewOption("⏻ "+cat.Label(catalog.KeyActionQuit), ActionQuit),
		)

		actionForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(cat.Label(catalog.KeyTitleAction)).
					Options(actionOptions...).
					Value(&action),
			),
		).WithTheme(UniverseTheme()).WithAccessible(accessible)

		if err := actionForm.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				result.Cancelled = true
				break
			}
			return nil, fmt.Errorf("form error: %w", err)
		}

		if action == ActionQuit {
			break
		}

		var err error
		switch action {
		case ActionPropose:
			err = runProposeForm(session, cat, accessible)
		case ActionRemove:
			err = runRemoveForm(session, cat, accessible)
		case ActionSimulate:
			err = runSimulation(session, cat, accessible, out)
			if err == nil {
				result.Simulations++
			}
		case ActionExport:
			err = runExportForm(session, cat, accessible)
		}
		if err != nil {
			return nil, err
		}
	}

	result.Snapshot = reg.Snapshot()
	return result, nil
}

func runProposeForm(session *Session, cat *catalog.Catalog, accessible bool) error {
	var name, rank string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(cat.Label(catalog.KeyLabelName)).
				Validate(NameValidator(cat)).
				Value(&name),
			huh.NewInput().
				Title(cat.Label(catalog.KeyLabelRank)).
				Description(cat.Label(catalog.KeyHintRank)).
				Placeholder("7").
				Validate(RankValidator(cat)).
				Value(&rank),
		).Title(cat.Label(catalog.KeyTitlePropose)).Description("Esc=back"),
	).WithTheme(UniverseTheme()).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil // Back to main
		}
		return fmt.Errorf("form error: %w", err)
	}

	session.Propose(name, rank)
	return nil
}

func runRemoveForm(session *Session, cat *catalog.Catalog, accessible bool) error {
	agents := session.Agents()
	if len(agents) == 0 {
		return nil
	}

	options := make([]huh.Option[string], len(agents))
	for i, a := range agents {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s %d)", a.Name, cat.Label(catalog.KeyLabelRank), a.Rank), a.ID)
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(cat.Label(catalog.KeyLabelSelectAgent)).
				Options(options...).
				Value(&id),
		).Description("Esc=back"),
	).WithTheme(UniverseTheme()).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form error: %w", err)
	}

	session.Remove(id)
	return nil
}

func runSimulation(session *Session, cat *catalog.Catalog, accessible bool, out io.Writer) error {
	results, err := session.Simulate()
	if err != nil {
		return err
	}

	res, err := WaitForSimulation(results, cat.Label(catalog.KeyLabelSimulationRunning), accessible, out)
	if err != nil {
		return err
	}
	session.RecordSimulation(res)
	return nil
}

func runExportForm(session *Session, cat *catalog.Catalog, accessible bool) error {
	format := string(graph.FormatSVG)
	var path string

	formatOptions := make([]huh.Option[string], len(config.GraphFormatOptions))
	for i, o := range config.GraphFormatOptions {
		formatOptions[i] = huh.NewOption(o.Label+" - "+o.Description, o.Value)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(cat.Label(catalog.KeyLabelFormat)).
				Options(formatOptions...).
				Value(&format),
			huh.NewInput().
				Title(cat.Label(catalog.KeyLabelPath)).
				PlaceholderFunc(func() string {
					return DefaultExportPath(graph.Format(format))
				}, &format).
				Value(&path),
		).Title(cat.Label(catalog.KeyActionExport)).Description("Esc=back"),
	).WithTheme(UniverseTheme()).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form error: %w", err)
	}

	f, err := graph.ParseFormat(format)
	if err != nil {
		return err
	}
	if path == "" {
		path = DefaultExportPath(f)
	}
	// Write failures are shown as a notice on the next screen
	_ = session.ExportGraph(f, path)
	return nil
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
