package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(inputCmd)
}

var inputCmd = &cobra.Command{
	Use:   "input [MESSAGE]",
	Short: "Read one line from stdin and print it trimmed",
	Long: `Writes MESSAGE without a newline, reads one line from standard input
and prints it with surrounding whitespace removed.

Examples:
  konsole input "Name: "
  echo "  Deepak  " | konsole input`,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := newConsole(cmd).Input(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		debugf("Read %d characters", len(line))
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	},
}
