// Package catalog loads the localized message templates used for proposal
// outcomes, collaboration details, and dashboard labels.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

//go:embed templates/*.yaml
var embeddedCatalogs embed.FS

// DefaultLocale is used as the base for every other locale.
const DefaultLocale = "en"

// Message keys that are not proposal reasons.
const (
	KeyCollaborationFailure = "collaboration_failure"
	KeyCollaborationSuccess = "collaboration_success"

	KeyTitlePropose              = "title_propose"
	KeyTitleUniverse             = "title_universe"
	KeyTitleSimulation           = "title_simulation"
	KeyLabelName                 = "label_name"
	KeyLabelRank                 = "label_rank"
	KeyHintRank                  = "hint_rank"
	KeyLabelTotalAgents          = "label_total_agents"
	KeyLabelAcceptanceRate       = "label_acceptance_rate"
	KeyLabelActiveAgents         = "label_active_agents"
	KeyLabelNoAgents             = "label_no_agents"
	KeyLabelNoGraph              = "label_no_graph"
	KeyLabelSimulationRunning    = "label_simulation_running"
	KeyLabelSimulationResult     = "label_simulation_result"
	KeyLabelCollaborationDetails = "label_collaboration_details"
	KeyLabelCollaborators        = "label_collaborators"
	KeyLabelCoefficient          = "label_coefficient"
	KeyLabelSystemState          = "label_system_state"
	KeyPromptNameRequired        = "prompt_name_required"
	KeyPromptRankInvalid         = "prompt_rank_invalid"
	KeyLabelSimulationIdle       = "label_simulation_idle"
	KeyLabelGraphWritten         = "label_graph_written"
	KeyLabelSelectAgent          = "label_select_agent"
	KeyLabelFormat               = "label_format"
	KeyLabelPath                 = "label_path"

	KeyTitleAction    = "title_action"
	KeyActionPropose  = "action_propose"
	KeyActionRemove   = "action_remove"
	KeyActionSimulate = "action_simulate"
	KeyActionExport   = "action_export"
	KeyActionQuit     = "action_quit"
)

// Variables holds the template variables for message rendering.
type Variables struct {
	Name  string
	Rank  string
	Count int
	Total int
	Min   int
}

// Loader handles loading catalogs for a locale.
type Loader struct {
	messagesDir string
}

// NewLoader creates a loader. messagesDir may hold <locale>.yaml files that
// override embedded messages key by key; it is optional.
func NewLoader(messagesDir string) *Loader {
	return &Loader{messagesDir: messagesDir}
}

// Catalog is a parsed set of message templates for one locale.
type Catalog struct {
	Locale    string
	templates map[string]*template.Template
}

// Load builds the catalog for locale.
// Priority order, per key:
// 1. <messagesDir>/<locale>.yaml
// 2. Embedded templates/<locale>.yaml
// 3. Embedded templates/en.yaml
func (l *Loader) Load(locale string) (*Catalog, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	messages, err := readEmbedded(DefaultLocale)
	if err != nil {
		return nil, err
	}

	found := locale == DefaultLocale
	if locale != DefaultLocale {
		if localized, err := readEmbedded(locale); err == nil {
			merge(messages, localized)
			found = true
		}
	}

	if l.messagesDir != "" {
		path := filepath.Join(l.messagesDir, locale+".yaml")
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			override, err := parse(data)
			if err != nil {
				return nil, fmt.Errorf("failed to parse messages %s: %w", path, err)
			}
			merge(messages, override)
			found = true
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read messages %s: %w", path, err)
		}
	}

	if !found {
		return nil, fmt.Errorf("no messages found for locale %q", locale)
	}

	c := &Catalog{Locale: locale, templates: make(map[string]*template.Template, len(messages))}
	for key, text := range messages {
		tmpl, err := template.New(key).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message %q: %w", key, err)
		}
		c.templates[key] = tmpl
	}
	return c, nil
}

// Default returns the embedded English catalog.
func Default() *Catalog {
	c, err := NewLoader("").Load(DefaultLocale)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded %s messages are invalid: %v", DefaultLocale, err))
	}
	return c
}

// Locales returns the locales available from the embedded catalogs and messagesDir.
func (l *Loader) Locales() []string {
	locales := make(map[string]bool)

	entries, err := embeddedCatalogs.ReadDir("templates")
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
				locales[strings.TrimSuffix(entry.Name(), ".yaml")] = true
			}
		}
	}

	if l.messagesDir != "" {
		entries, err := os.ReadDir(l.messagesDir)
		if err == nil {
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
					locales[strings.TrimSuffix(entry.Name(), ".yaml")] = true
				}
			}
		}
	}

	result := make([]string, 0, len(locales))
	for name := range locales {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Render renders the message for key.
func (c *Catalog) Render(key string, vars Variables) (string, error) {
	tmpl, ok := c.templates[key]
	if !ok {
		return "", fmt.Errorf("unknown message %q", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to render message %q: %w", key, err)
	}
	return buf.String(), nil
}

// Text renders key and falls back to the key itself when it cannot be rendered.
func (c *Catalog) Text(key string, vars Variables) string {
	s, err := c.Render(key, vars)
	if err != nil {
		return key
	}
	return s
}

// Label renders a message that takes no variables.
func (c *Catalog) Label(key string) string {
	return c.Text(key, Variables{})
}

// ProposalMessages adapts the catalog to the registry's message hook.
func (c *Catalog) ProposalMessages() universe.MessageFunc {
	return func(reason universe.Reason, name, rank string) string {
		s, err := c.Render(reason.String(), Variables{Name: name, Rank: rank})
		if err != nil {
			return universe.DefaultMessages(reason, name, rank)
		}
		return s
	}
}

// SimulationDetail adapts the catalog to the simulation runner's detail hook.
func (c *Catalog) SimulationDetail() simulation.DetailFunc {
	return func(r simulation.Result) string {
		key := KeyCollaborationFailure
		if r.Succeeded() {
			key = KeyCollaborationSuccess
		}
		s, err := c.Render(key, Variables{
			Count: r.AgentCount,
			Total: r.Coefficient,
			Rank:  strconv.Itoa(r.Coefficient),
			Min:   simulation.MinAgents,
		})
		if err != nil {
			return simulation.DefaultDetail(r)
		}
		return s
	}
}

func readEmbedded(locale string) (map[string]string, error) {
	data, err := embeddedCatalogs.ReadFile("templates/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no embedded messages for locale %q", locale)
	}
	return parse(data)
}

func parse(data []byte) (map[string]string, error) {
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
