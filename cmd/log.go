package cmd

import (
	logger "github.com/PolarWolf314/konsole/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(
		newLevelCmd("log", "Print a grey message (level 0 only)", (*logger.Logger).Log),
		newLevelCmd("info", "Print a cyan message (level 1 or lower)", (*logger.Logger).Info),
		newLevelCmd("warn", "Print a yellow message (level 2 or lower)", (*logger.Logger).Warn),
		newLevelCmd("error", "Print a red message (always shown)", (*logger.Logger).Error),
		newLevelCmd("inverse", "Print grey text on a white background (always shown)", (*logger.Logger).Inverse),
	)
}

// newLevelCmd builds one leveled print command around the given logger method.
func newLevelCmd(name, short string, emit func(l *logger.Logger, format string, args ...any)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " MESSAGE [ARGS...]",
		Short: short,
		Long: short + `.

With a single argument, the message is rendered through the default format
(--format, "%s" unless configured). With more arguments, the first one is
the format string and the rest are its operands. Numeric operands are passed
as numbers, so %d and %f work.

Examples:
  konsole ` + name + ` "This is a message"
  konsole ` + name + ` "My name is %s and my salary is: %d" Deepak 2000
  konsole --format "Logger: %s" ` + name + ` "1.0.1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debugf("Running %s with %d operands at level %s", name, len(args)-1, Logger.Level())
			emit(Logger, args[0], formatArgs(args[1:])...)
			return nil
		},
	}
}
