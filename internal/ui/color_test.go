package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColorTableCodes(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"GREY", 8},
		{"CYAN", 14},
		{"YELLOW", 11},
		{"RED", 9},
		{"WHITE", 15},
		{"GREEN", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorTable[tt.name]; got != tt.want {
				t.Errorf("ColorTable[%q] = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"grey", Grey, false},
		{"LIGHT_GREEN", LightGreen, false},
		{"2", Green, false},
		{"200", Color(200), false},
		{"256", 0, true},
		{"magenta", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestForegroundAndBackground(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = originalNoColor }()

	fg := Foreground("hello", Cyan)
	if !strings.HasPrefix(fg, "\x1b[38;5;14m") || !strings.Contains(fg, "hello") {
		t.Errorf("Foreground() = %q, want 8-bit cyan escape around text", fg)
	}

	bg := Background("hello", White)
	if !strings.HasPrefix(bg, "\x1b[48;5;15m") || !strings.Contains(bg, "hello") {
		t.Errorf("Background() = %q, want 8-bit white background escape around text", bg)
	}
}

func TestForegroundWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Foreground("plain", Red); got != "plain" {
		t.Errorf("Foreground() with NO_COLOR = %q, want %q", got, "plain")
	}
	if got := Background("plain", White); got != "plain" {
		t.Errorf("Background() with NO_COLOR = %q, want %q", got, "plain")
	}
}

func TestForegroundEndsWithPlainReset(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = originalNoColor }()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"foreground", Foreground("x", Grey), "\x1b[38;5;8mx\x1b[0m"},
		{"background", Background("x", White), "\x1b[48;5;15mx\x1b[0m"},
		{"high code", Foreground("x", Color(200)), "\x1b[38;5;200mx\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
			if !strings.HasSuffix(tt.got, "\x1b[0m") {
				t.Errorf("%q does not end with a plain reset", tt.got)
			}
		})
	}
}
