package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuannvm/ultratech/internal/graph"
)

// Colors of the universe dashboard
var (
	ColorPrimary   = lipgloss.Color("#22d3ee") // Cyan
	ColorSecondary = lipgloss.Color("#8b5cf6") // Violet
	ColorMuted     = lipgloss.Color("241")     // Gray
	ColorSuccess   = lipgloss.Color("#10b981") // Emerald
	ColorFailure   = lipgloss.Color("#f43f5e") // Rose
	ColorEdge      = lipgloss.Color("#155e75") // Dim cyan
)

// Banner returns the styled app banner
func Banner() string {
	logo := ` ██╗   ██╗██╗  ████████╗██████╗  █████╗       ████████╗███████╗ ██████╗██╗  ██╗
 ██║   ██║██║  ╚══██╔══╝██╔══██╗██╔══██╗      ╚══██╔══╝██╔════╝██╔════╝██║  ██║
 ██║   ██║██║     ██║   ██████╔╝███████║█████╗   ██║   █████╗  ██║     ███████║
 ██║   ██║██║     ██║   ██╔══██╗██╔══██║╚════╝   ██║   ██╔══╝  ██║     ██╔══██║
 ╚██████╔╝███████╗██║   ██║  ██║██║  ██║         ██║   ███████╗╚██████╗██║  ██║
  ╚═════╝ ╚══════╝╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝         ╚═╝   ╚══════╝ ╚═════╝╚═╝  ╚═╝
`
	logoStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	tagline := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render(" PCO")

	return logoStyle.Render(logo) + "\n" + tagline + "\n"
}

// UniverseTheme returns the form theme of the dashboard
func UniverseTheme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Title = t.Focused.Title.
		Foreground(ColorPrimary).
		Bold(true)

	t.Focused.SelectedOption = t.Focused.SelectedOption.
		Foreground(ColorSuccess)

	t.Focused.Description = t.Focused.Description.
		Foreground(ColorMuted)

	t.Focused.ErrorMessage = t.Focused.ErrorMessage.
		Foreground(ColorFailure)

	t.Blurred.Title = t.Blurred.Title.
		Foreground(ColorMuted)

	return t
}

// HeaderStyle returns styled header for the dashboard panels
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted).
		Padding(0, 1).
		MarginBottom(1)
}

// TitleStyle returns style for section titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
}

// SuccessStyle returns style for success messages
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorSuccess)
}

// FailureStyle returns style for rejections and failed simulations
func FailureStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorFailure)
}

// MutedStyle returns style for muted/secondary text
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// TileStyle frames a metric tile
func TileStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 2).
		MarginRight(1)
}

// ResultStyle frames an outcome in green or red
func ResultStyle(success bool) lipgloss.Style {
	color := ColorFailure
	if success {
		color = ColorSuccess
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
}

// NodeStyle colors canvas cells of the node at palette index i
func NodeStyle(i int) lipgloss.Style {
	if i == graph.NoColor {
		return lipgloss.NewStyle().Foreground(ColorEdge)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(graph.ColorFor(i).Hex)).
		Bold(true)
}
