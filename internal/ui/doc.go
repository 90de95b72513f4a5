// Package ui holds the 8-bit ANSI color table and the colorizers used by
// the logger, the prompts and the CLI's own status lines.
//
// # Color Table
//
// Colors are 8-bit codes (ESC[38;5;<n>m for foreground, ESC[48;5;<n>m for
// background):
//
//	ui.Foreground("hi", ui.Grey)    // 8
//	ui.Foreground("hi", ui.Cyan)    // 14
//	ui.Background("hi", ui.White)   // 15
//
// # Semantic Formatters
//
//	ui.Error.Sprint("✗")
//	ui.Success.Sprint("✓")
//	ui.Info.Sprint("→")
//	ui.Highlight.Sprint("config.toml")
//
// # Color Behavior
//
// Colors are disabled when NO_COLOR is set (any value) or when fatih/color
// detects a terminal without color support. Formatters then fall back to
// text decorations: Code uses `backticks`, Highlight 'quotes' and Muted
// (parentheses).
package ui
