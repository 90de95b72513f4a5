package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is an 8-bit ANSI color code.
type Color uint8

// The fixed color table shared by the logger and the prompts.
const (
	Black      Color = 0
	Maroon     Color = 1
	Green      Color = 2
	Blue       Color = 4
	Purple     Color = 5
	LightGrey  Color = 7
	Grey       Color = 8
	Red        Color = 9
	LightGreen Color = 10
	Yellow     Color = 11
	Cyan       Color = 14
	White      Color = 15
)

// ColorTable maps symbolic color names to their 8-bit codes.
var ColorTable = map[string]Color{
	"BLACK":       Black,
	"MAROON":      Maroon,
	"GREEN":       Green,
	"BLUE":        Blue,
	"PURPLE":      Purple,
	"LIGHT_GREY":  LightGrey,
	"GREY":        Grey,
	"RED":         Red,
	"LIGHT_GREEN": LightGreen,
	"YELLOW":      Yellow,
	"CYAN":        Cyan,
	"WHITE":       White,
}

// ParseColor resolves a color given either as a table name (case-insensitive)
// or as a numeric code between 0 and 255.
func ParseColor(s string) (Color, error) {
	if c, ok := ColorTable[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	return Color(n), nil
}

// Foreground wraps text in an 8-bit foreground color escape.
func Foreground(text string, c Color) string {
	if noColor() {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[%dm", c, text, color.Reset)
}

// Background wraps text in an 8-bit background color escape.
func Background(text string, c Color) string {
	if noColor() {
		return text
	}
	return fmt.Sprintf("\x1b[48;5;%dm%s\x1b[%dm", c, text, color.Reset)
}
