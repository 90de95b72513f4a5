package cmd

import (
	"strings"

	"github.com/PolarWolf314/konsole/internal/ui"
	"github.com/spf13/cobra"
)

var rawColor string

func init() {
	rawCmd.Flags().StringVar(&rawColor, "color", "WHITE", "foreground color: a table name (GREY, CYAN, ...) or a code 0-255")
	RootCmd.AddCommand(rawCmd)
	RootCmd.AddCommand(lineCmd)
}

// resetRawCommandState resets the raw command's global state for testing.
func resetRawCommandState() {
	rawColor = "WHITE"
}

var rawCmd = &cobra.Command{
	Use:   "raw MESSAGE",
	Short: "Print a message in a given color, ignoring the level",
	Long: `Prints MESSAGE as-is in the given 8-bit foreground color.

No format is applied. The trailing newline follows --no-newline.

Examples:
  konsole raw "This is something new raw"
  konsole raw --color 2 --no-newline "This is something new version"
  konsole raw --color cyan "done"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ui.ParseColor(rawColor)
		if err != nil {
			return err
		}
		debugf("Printing raw message in color %d", c)
		Logger.Raw(args[0], c, Logger.NewLine())
		return nil
	},
}

var lineCmd = &cobra.Command{
	Use:   "line [MESSAGE]",
	Short: "Print a separator rule, optionally around a message",
	Long: `Prints a rule of 58 '=' characters. With a message, prints the rule,
the message prefixed by "||<tab>", and the rule again.

Examples:
  konsole line
  konsole line "This will print inside line"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Line(strings.Join(args, " "))
		return nil
	},
}
