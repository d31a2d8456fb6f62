package config

// Option is one choice offered by a flag or a dashboard select.
type Option struct {
	Value       string
	Label       string
	Description string
}

// Verbosity levels
const (
	VerbosityNormal  = "normal"
	VerbosityVerbose = "verbose"
	VerbosityQuiet   = "quiet"
)

// Graph export formats
const (
	GraphText = "text"
	GraphDOT  = "dot"
	GraphSVG  = "svg"
)

// GraphFormatOptions lists the graph formats in display order.
var GraphFormatOptions = []Option{
	{Value: GraphText, Label: "Text", Description: "Terminal canvas"},
	{Value: GraphDOT, Label: "DOT", Description: "Graphviz, render with neato -n"},
	{Value: GraphSVG, Label: "SVG", Description: "Scalable vector graphics"},
}

// LocaleOptions lists the embedded message locales.
var LocaleOptions = []Option{
	{Value: "en", Label: "English", Description: "Default"},
	{Value: "fr", Label: "Français", Description: "Interface d'origine"},
}

// RunOptions are the parameters of one non-interactive replay.
type RunOptions struct {
	Proposals   []string // NAME:RANK, replayed in order
	Simulate    bool
	GraphFormat string // empty for no graph
	GraphOutput string // empty for stdout
	Locale      string
	ConfigPath  string
	Verbosity   string
}

// DefaultRunOptions seeds RunOptions from cfg.
func DefaultRunOptions(cfg *Config) RunOptions {
	if cfg == nil {
		cfg = Default()
	}
	return RunOptions{
		Locale:    cfg.Locale,
		Verbosity: VerbosityNormal,
	}
}

// IsQuiet reports whether only errors should be printed.
func (o RunOptions) IsQuiet() bool {
	return o.Verbosity == VerbosityQuiet
}

// OptionValues returns the values of options, in order.
func OptionValues(options []Option) []string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return values
}
