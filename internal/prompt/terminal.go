package prompt

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	kerrors "github.com/PolarWolf314/konsole/internal/errors"
	"golang.org/x/term"
)

// RawMode switches a terminal into raw mode. Enter returns the function that
// puts the terminal back into cooked mode.
type RawMode interface {
	Enter() (restore func() error, err error)
}

type terminalRaw struct {
	fd int
}

// TerminalRaw returns the RawMode of the terminal behind fd.
func TerminalRaw(fd int) RawMode {
	return terminalRaw{fd: fd}
}

func (t terminalRaw) Enter() (func() error, error) {
	if !term.IsTerminal(t.fd) {
		return nil, kerrors.ErrNotTerminal
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return func() error {
		return term.Restore(t.fd, state)
	}, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// interruptSignals restore the terminal before the process goes away.
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// rawSession owns the terminal while it is in raw mode. release is safe to
// call from any exit path, any number of times.
type rawSession struct {
	restore func() error
	exit    func(int)

	once sync.Once
	err  error
	done chan struct{}
}

// newRawSession starts watching sigs; a signal received before release
// restores the terminal and exits with status 1.
func newRawSession(restore func() error, exit func(int), sigs <-chan os.Signal) *rawSession {
	s := &rawSession{
		restore: restore,
		exit:    exit,
		done:    make(chan struct{}),
	}
	go s.watch(sigs)
	return s
}

func (s *rawSession) watch(sigs <-chan os.Signal) {
	select {
	case <-s.done:
	case <-sigs:
		// The prompt may have finished while the signal was pending; only
		// the caller that restores the terminal decides the outcome.
		if first, _ := s.end(); first {
			s.exit(1)
		}
	}
}

// end restores the terminal once. first is true only for the call that did it.
func (s *rawSession) end() (first bool, err error) {
	s.once.Do(func() {
		first = true
		close(s.done)
		s.err = s.restore()
	})
	return first, s.err
}

func (s *rawSession) release() error {
	_, err := s.end()
	return err
}
