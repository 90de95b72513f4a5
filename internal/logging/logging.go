package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PolarWolf314/konsole/internal/ui"
)

// DefaultFormat is the format applied to single-argument calls.
const DefaultFormat = "%s"

const separator = "=========================================================="

// Options are the caller-supplied logger settings. Nil and empty fields fall
// back to the defaults when merged.
type Options struct {
	Level   *Level
	Format  string
	NewLine *bool
}

// Config is a fully populated logger configuration.
type Config struct {
	Level   Level
	Format  string
	NewLine bool
}

// Merge lays the options over the defaults {Level: 0, Format: "%s", NewLine: true}.
func (o Options) Merge() (Config, error) {
	cfg := Config{Level: LevelLog, Format: DefaultFormat, NewLine: true}
	if o.Level != nil {
		if err := o.Level.Validate(); err != nil {
			return Config{}, err
		}
		cfg.Level = *o.Level
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.NewLine != nil {
		cfg.NewLine = *o.NewLine
	}
	return cfg, nil
}

// LevelPtr returns a pointer to l, for use in Options.
func LevelPtr(l Level) *Level {
	return &l
}

// BoolPtr returns a pointer to b, for use in Options.
func BoolPtr(b bool) *bool {
	return &b
}

type Logger struct {
	level   Level
	format  string
	newLine bool
	out     io.Writer
}

// New builds a Logger writing to stdout from opts merged over the defaults.
func New(opts Options) (*Logger, error) {
	cfg, err := opts.Merge()
	if err != nil {
		return nil, err
	}
	return &Logger{
		level:   cfg.Level,
		format:  cfg.Format,
		newLine: cfg.NewLine,
		out:     os.Stdout,
	}, nil
}

// Default returns a Logger with the default configuration.
func Default() *Logger {
	l, _ := New(Options{})
	return l
}

func (l *Logger) Level() Level {
	return l.level
}

// SetLevel changes the threshold for subsequent calls. Values outside 0-3
// are rejected and the current level is kept.
func (l *Logger) SetLevel(level Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	l.level = level
	return nil
}

func (l *Logger) Format() string {
	return l.format
}

func (l *Logger) SetFormat(format string) {
	l.format = format
}

func (l *Logger) NewLine() bool {
	return l.newLine
}

func (l *Logger) SetNewLine(nl bool) {
	l.newLine = nl
}

// SetOutput redirects the logger. A nil writer restores stdout.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	l.out = w
}

// Log prints in grey when the level is 0.
func (l *Logger) Log(format string, args ...any) {
	if l.level > LevelLog {
		return
	}
	l.Raw(l.sprintf(format, args), ui.Grey, l.newLine)
}

// Info prints in cyan when the level is 1 or lower.
func (l *Logger) Info(format string, args ...any) {
	if l.level > LevelInfo {
		return
	}
	l.Raw(l.sprintf(format, args), ui.Cyan, l.newLine)
}

// Warn prints in yellow when the level is 2 or lower.
func (l *Logger) Warn(format string, args ...any) {
	if l.level > LevelWarn {
		return
	}
	l.Raw(l.sprintf(format, args), ui.Yellow, l.newLine)
}

// Error prints in red at every level.
func (l *Logger) Error(format string, args ...any) {
	l.Raw(l.sprintf(format, args), ui.Red, l.newLine)
}

// Inverse prints grey text on a white background at every level.
func (l *Logger) Inverse(format string, args ...any) {
	l.Raw(ui.Background(l.sprintf(format, args), ui.White), ui.Grey, l.newLine)
}

// Raw writes message in the given foreground color, followed by a newline
// when nl is set. Every other method goes through Raw.
func (l *Logger) Raw(message string, c ui.Color, nl bool) {
	text := ui.Foreground(message, c)
	if nl {
		text += "\n"
	}
	io.WriteString(l.out, text)
}

// Print is Raw in white with the logger's newline preference.
func (l *Logger) Print(message string) {
	l.Raw(message, ui.White, l.newLine)
}

// Line prints a separator rule, or a message boxed between two rules.
func (l *Logger) Line(message ...string) {
	text := strings.Join(message, " ")
	rows := []string{separator}
	if text != "" {
		rows = append(rows, "||\t"+text, separator)
	}
	l.Raw(strings.Join(rows, "\n"), ui.White, l.newLine)
}

// sprintf treats a lone argument as the message for the default format.
func (l *Logger) sprintf(format string, args []any) string {
	if len(args) == 0 {
		return fmt.Sprintf(l.format, format)
	}
	return fmt.Sprintf(format, args...)
}

// Funcs holds free functions bound to one Logger.
type Funcs struct {
	Log     func(format string, args ...any)
	Info    func(format string, args ...any)
	Warn    func(format string, args ...any)
	Error   func(format string, args ...any)
	Inverse func(format string, args ...any)
	Raw     func(message string, c ui.Color, nl bool)
}

// Bind returns the logger's methods as standalone functions. They keep
// reading the logger's current settings.
func (l *Logger) Bind() Funcs {
	return Funcs{
		Log:     l.Log,
		Info:    l.Info,
		Warn:    l.Warn,
		Error:   l.Error,
		Inverse: l.Inverse,
		Raw:     l.Raw,
	}
}
