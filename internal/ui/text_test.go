package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = originalNoColor }()

	result := Code.Sprint("konsole demo")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.HasPrefix(result, "\x1b[38;5;11m") {
		t.Errorf("Code.Sprint should start with the yellow 8-bit escape, got: %q", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "konsole demo", "`konsole demo`"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "config.toml", "'config.toml'"},
		{"Muted adds parentheses", Muted, "default", "(default)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := Code.Sprintf("konsole %s", "line")
	want := "`konsole line`"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	tests := []struct {
		name    string
		env     string
		noColor bool
		want    bool
	}{
		{"NO_COLOR set", "1", false, true},
		{"empty NO_COLOR counts as unset", "", false, false},
		{"color.NoColor", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.env)
			color.NoColor = tt.noColor
			if got := noColor(); got != tt.want {
				t.Errorf("noColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
