package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PolarWolf314/konsole/internal/prompt"
	"github.com/PolarWolf314/konsole/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// newConsole returns the console prompts read from. Tests replace it.
var newConsole = func(cmd *cobra.Command) *prompt.Console {
	c := prompt.Stdio()
	c.In = cmd.InOrStdin()
	c.Out = cmd.OutOrStdout()
	return c
}

// debugf writes a diagnostic line when --debug is set.
func debugf(format string, args ...any) {
	if !debug || Diag == nil {
		return
	}
	Diag.Log("[debug] "+format, args...)
}

// formatArgs turns command-line arguments into printf operands, keeping
// numbers numeric so %d and %f directives work.
func formatArgs(args []string) []any {
	operands := make([]any, 0, len(args))
	for _, a := range args {
		if n, err := strconv.ParseInt(a, 10, 64); err == nil {
			operands = append(operands, n)
			continue
		}
		if f, err := strconv.ParseFloat(a, 64); err == nil {
			operands = append(operands, f)
			continue
		}
		operands = append(operands, a)
	}
	return operands
}

// startSpinner creates and starts a spinner with the given message unless in debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; cleanup adds one
// before printing the final message to out.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		debugf("Failed to set spinner color: %v", err)
	}

	if !debug {
		s.Start()
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}
