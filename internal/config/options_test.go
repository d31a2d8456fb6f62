package config

import (
	"reflect"
	"testing"
)

func TestDefaultRunOptions(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *Config
		wantLocale string
	}{
		{"nil config", nil, DefaultLocale},
		{"configured locale", &Config{Locale: "fr"}, "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultRunOptions(tt.cfg)
			if opts.Locale != tt.wantLocale {
				t.Errorf("Locale = %q, want %q", opts.Locale, tt.wantLocale)
			}
			if opts.Verbosity != VerbosityNormal {
				t.Errorf("Verbosity = %q, want %q", opts.Verbosity, VerbosityNormal)
			}
			if opts.Simulate || opts.GraphFormat != "" || len(opts.Proposals) != 0 {
				t.Errorf("DefaultRunOptions() = %+v, want an empty replay", opts)
			}
		})
	}
}

func TestRunOptionsIsQuiet(t *testing.T) {
	opts := RunOptions{Verbosity: VerbosityQuiet}
	if !opts.IsQuiet() {
		t.Error("expected IsQuiet() to return true")
	}

	opts.Verbosity = VerbosityVerbose
	if opts.IsQuiet() {
		t.Error("expected IsQuiet() to return false")
	}
}

func TestOptionValues(t *testing.T) {
	got := OptionValues(GraphFormatOptions)
	want := []string{GraphText, GraphDOT, GraphSVG}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OptionValues() = %v, want %v", got, want)
	}

	if got := OptionValues(LocaleOptions); !reflect.DeepEqual(got, []string{"en", "fr"}) {
		t.Errorf("OptionValues(LocaleOptions) = %v", got)
	}
}
