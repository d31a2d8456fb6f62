package tui

import (
	"strings"
	"testing"

	"github.com/tuannvm/ultratech/internal/graph"
)

func TestUniverseTheme(t *testing.T) {
	theme := UniverseTheme()
	if theme == nil {
		t.Error("UniverseTheme() returned nil")
	}
}

func TestStylesRender(t *testing.T) {
	styles := map[string]func() string{
		"HeaderStyle":  func() string { return HeaderStyle().Render("test") },
		"TitleStyle":   func() string { return TitleStyle().Render("test") },
		"SuccessStyle": func() string { return SuccessStyle().Render("test") },
		"FailureStyle": func() string { return FailureStyle().Render("test") },
		"MutedStyle":   func() string { return MutedStyle().Render("test") },
		"TileStyle":    func() string { return TileStyle().Render("test") },
		"ResultStyle":  func() string { return ResultStyle(true).Render("test") },
		"NodeStyle":    func() string { return NodeStyle(3).Render("test") },
		"EdgeStyle":    func() string { return NodeStyle(graph.NoColor).Render("test") },
	}

	for name, render := range styles {
		t.Run(name, func(t *testing.T) {
			if rendered := render(); !strings.Contains(rendered, "test") {
				t.Errorf("%s rendered %q", name, rendered)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	banner := Banner()
	if banner == "" {
		t.Error("Banner() returned empty string")
	}
	// Should contain ULTRA-Tech in ASCII art
	if len(banner) < 100 {
		t.Error("Banner() seems too short for ASCII art")
	}
	if !strings.Contains(banner, "PCO") {
		t.Error("Banner() should carry the tagline")
	}
}
