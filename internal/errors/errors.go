package errors

import "errors"

// Logger errors indicate invalid logger configuration.
var (
	// ErrInvalidLevel indicates a log level outside the accepted 0-3 range.
	ErrInvalidLevel = errors.New("invalid log level (accepted: 0, 1, 2, 3)")
)

// Prompt errors indicate failures while reading from the terminal.
var (
	// ErrInvalidColor indicates a mask color name that is not cyan, green or grey.
	ErrInvalidColor = errors.New("invalid mask color (accepted: cyan, green, grey)")

	// ErrNotTerminal indicates stdin cannot be switched into raw mode.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrAborted indicates the user interrupted a password prompt.
	ErrAborted = errors.New("prompt aborted")
)

// Config errors indicate issues with the configuration file.
var (
	// ErrConfigExists indicates a configuration file is already present.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidConfig indicates the configuration file is malformed or holds invalid values.
	ErrInvalidConfig = errors.New("config file is invalid")
)
