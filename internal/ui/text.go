package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	fg     Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.apply(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.apply(fmt.Sprintf(format, a...))
}

func (f Formatter) apply(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return Foreground(text, f.fg)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/ : an empty value counts as unset.
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		return true
	}
	return color.NoColor
}

// Semantic formatters for the CLI's own status output.
var (
	// Code formats runnable commands. Yellow with color, `backticks` without.
	Code = Formatter{Yellow, "`", "`"}

	// Success formats success indicators.
	Success = Formatter{Green, "", ""}

	// Error formats error indicators.
	Error = Formatter{Red, "", ""}

	// Warning formats warning indicators.
	Warning = Formatter{Yellow, "", ""}

	// Info formats hints and directional indicators.
	Info = Formatter{Cyan, "", ""}

	// Highlight formats user values like paths and config keys.
	// Cyan with color, 'single quotes' without.
	Highlight = Formatter{Cyan, "'", "'"}

	// Muted formats secondary text. Grey with color, (parentheses) without.
	Muted = Formatter{Grey, "(", ")"}
)
