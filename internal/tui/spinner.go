package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuannvm/ultratech/internal/simulation"
)

// resultMsg carries the simulation result into the spinner model.
type resultMsg simulation.Result

// simulationModel shows a spinner until the pending simulation resolves.
// Keys are ignored: a triggered simulation cannot be cancelled.
type simulationModel struct {
	spinner spinner.Model
	label   string
	results <-chan simulation.Result
	result  simulation.Result
	done    bool
}

func newSimulationModel(results <-chan simulation.Result, label string) simulationModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)
	return simulationModel{spinner: sp, label: label, results: results}
}

func waitForResult(results <-chan simulation.Result) tea.Cmd {
	return func() tea.Msg {
		return resultMsg(<-results)
	}
}

func (m simulationModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForResult(m.results))
}

func (m simulationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.result = simulation.Result(msg)
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m simulationModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + MutedStyle().Render(m.label) + "\n"
}

// WaitForSimulation blocks until results delivers, animating a spinner
// labelled label. Accessible sessions print the label instead.
func WaitForSimulation(results <-chan simulation.Result, label string, accessible bool, out io.Writer) (simulation.Result, error) {
	if accessible {
		_, _ = fmt.Fprintln(out, label)
		return <-results, nil
	}

	final, err := tea.NewProgram(newSimulationModel(results, label), tea.WithOutput(out)).Run()
	if err != nil {
		return simulation.Result{}, fmt.Errorf("simulation display error: %w", err)
	}
	m, ok := final.(simulationModel)
	if !ok || !m.done {
		return simulation.Result{}, fmt.Errorf("simulation display ended before the result")
	}
	return m.result, nil
}
