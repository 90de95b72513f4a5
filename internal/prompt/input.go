package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input writes message (without a newline) and returns the next line read
// from the console, trimmed of surrounding whitespace.
func (c *Console) Input(message string) (string, error) {
	if message != "" {
		if _, err := io.WriteString(c.Out, message); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	// One byte at a time so nothing past the newline is consumed.
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := c.In.Read(b)
		if n > 0 {
			if b[0] == '\n' {
				break
			}
			line = append(line, b[0])
			continue
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return "", io.EOF
			}
			break
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(string(line)), nil
}

// Input reads one line from stdin.
func Input(message string) (string, error) {
	return Stdio().Input(message)
}
