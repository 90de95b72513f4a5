package logger

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/konsole/internal/errors"
)

// Level is the verbosity threshold of a Logger. A call is emitted only when
// the logger's level is at or below the call's own level.
type Level int

const (
	LevelLog Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelLog:
		return "log"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Validate rejects levels outside 0-3.
func (l Level) Validate() error {
	if l < LevelLog || l > LevelError {
		return fmt.Errorf("level %d: %w", int(l), kerrors.ErrInvalidLevel)
	}
	return nil
}

// ParseLevel accepts either the numeric form ("2") or the name ("warn").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l := LevelLog; l <= LevelError; l++ {
		if s == l.String() {
			return l, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("level %q: %w", s, kerrors.ErrInvalidLevel)
	}
	l := Level(n)
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return l, nil
}
