package prompt

import (
	"io"
	"os"
)

// Console is the terminal a prompt reads from and echoes to.
type Console struct {
	In  io.Reader
	Out io.Writer
	Raw RawMode

	// Exit terminates the process after an interrupt. Defaults to os.Exit.
	Exit func(code int)
}

// Stdio returns the console bound to the process's standard streams.
func Stdio() *Console {
	return &Console{
		In:   os.Stdin,
		Out:  os.Stdout,
		Raw:  TerminalRaw(int(os.Stdin.Fd())),
		Exit: os.Exit,
	}
}

func (c *Console) exit(code int) {
	if c.Exit == nil {
		os.Exit(code)
		return
	}
	c.Exit(code)
}
