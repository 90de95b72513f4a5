package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/konsole/internal/errors"
	"github.com/PolarWolf314/konsole/internal/ui"
)

// maxMask caps the number of mask symbols echoed, whatever the secret's length.
const maxMask = 5

const (
	keyETX = 3
	keyEOT = 4
	keyCR  = 13
)

// ColorName is a mask color accepted by Password.
type ColorName string

const (
	ColorCyan  ColorName = "cyan"
	ColorGreen ColorName = "green"
	ColorGrey  ColorName = "grey"
)

// Code returns the 8-bit color code of the name.
func (n ColorName) Code() (ui.Color, error) {
	switch n {
	case ColorCyan:
		return ui.Cyan, nil
	case ColorGreen:
		return ui.Green, nil
	case ColorGrey:
		return ui.Grey, nil
	}
	return 0, fmt.Errorf("color %q: %w", string(n), kerrors.ErrInvalidColor)
}

// PasswordOptions are the per-call password settings. Empty fields take the
// defaults {Mask: "*", Color: "grey"}. NoMask hides the input entirely.
type PasswordOptions struct {
	Mask   string
	NoMask bool
	Color  ColorName
}

// PasswordConfig is a fully populated set of password settings.
type PasswordConfig struct {
	Mask   string
	NoMask bool
	Color  ui.Color
}

// Merge lays the options over the defaults.
func (o PasswordOptions) Merge() (PasswordConfig, error) {
	cfg := PasswordConfig{Mask: "*", NoMask: o.NoMask, Color: ui.Grey}
	if o.Mask != "" {
		cfg.Mask = o.Mask
	}
	if o.Color != "" {
		code, err := o.Color.Code()
		if err != nil {
			return PasswordConfig{}, err
		}
		cfg.Color = code
	}
	return cfg, nil
}

// mask renders the indicator for a secret of n characters.
func (cfg PasswordConfig) mask(n int) string {
	if cfg.NoMask || n == 0 {
		return ""
	}
	return ui.Foreground(strings.Repeat(cfg.Mask, min(n, maxMask)), cfg.Color)
}

// Password puts the console into raw mode, writes message and reads keys
// until Enter or end of input, echoing mask symbols instead of the keys.
// Ctrl-C and Ctrl-D restore the terminal and exit the process with status 1.
// Backspace is not interpreted; it becomes part of the secret.
func (c *Console) Password(message string, opts PasswordOptions) (string, error) {
	cfg, err := opts.Merge()
	if err != nil {
		return "", err
	}

	restore, err := c.Raw.Enter()
	if err != nil {
		return "", err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, interruptSignals...)
	session := newRawSession(restore, c.exit, sigs)

	// Signals stop being delivered before the terminal is handed back.
	finish := func() error {
		signal.Stop(sigs)
		return session.release()
	}
	defer finish()

	if _, err := io.WriteString(c.Out, message); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	var secret []byte
	b := make([]byte, 1)
read:
	for {
		n, err := c.In.Read(b)
		if n == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read password: %w", err)
			}
			break
		}

		switch b[0] {
		case keyCR:
			break read
		case keyETX, keyEOT:
			finish()
			io.WriteString(c.Out, "\n")
			c.exit(1)
			return "", kerrors.ErrAborted
		default:
			secret = append(secret, b[0])
			io.WriteString(c.Out, "\r"+message+cfg.mask(utf8.RuneCount(secret)))
		}
	}

	if err := finish(); err != nil {
		return "", fmt.Errorf("failed to restore terminal: %w", err)
	}
	io.WriteString(c.Out, "\n")
	return string(secret), nil
}

// Password reads a secret from the stdin terminal.
func Password(message string, opts PasswordOptions) (string, error) {
	return Stdio().Password(message, opts)
}
