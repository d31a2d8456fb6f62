package tui

import (
	"testing"

	"github.com/tuannvm/ultratech/internal/catalog"
)

func TestNameValidator(t *testing.T) {
	validate := NameValidator(catalog.Default())

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "Alpha", false},
		{"surrounding spaces", "  Beta ", false},
		{"empty", "", true},
		{"blank", "   \t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NameValidator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && err.Error() != "Please enter a name." {
				t.Errorf("NameValidator(%q) message = %q", tt.input, err.Error())
			}
		})
	}
}

func TestRankValidator(t *testing.T) {
	validate := RankValidator(catalog.Default())

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"prime", "7", false},
		{"composite still parses", "9", false},
		{"negative still parses", "-3", false},
		{"spaces", " 11 ", false},
		{"empty", "", true},
		{"letters", "seven", true},
		{"decimal", "7.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RankValidator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && err.Error() != "Please enter a valid rank." {
				t.Errorf("RankValidator(%q) message = %q", tt.input, err.Error())
			}
		})
	}
}
