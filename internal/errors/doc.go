// Package errors provides typed error values for konsole.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Logger errors: invalid configuration values (ErrInvalidLevel)
//   - Prompt errors: terminal and input failures (ErrNotTerminal, ErrAborted, ErrInvalidColor)
//   - Config errors: configuration file issues (ErrConfigExists, ErrInvalidConfig)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("setting level %d: %w", l, errors.ErrInvalidLevel)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrNotTerminal) {
//	    // Show user-friendly message
//	}
package errors
