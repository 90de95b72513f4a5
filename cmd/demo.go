package cmd

import (
	logger "github.com/PolarWolf314/konsole/internal/logging"
	"github.com/PolarWolf314/konsole/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every logger feature",
	Long: `Prints a sample of every logger feature: default and explicit formats,
level changes, inverse text, separator lines, raw output and bound functions.

The demo uses its own logger, so --level and --format do not apply.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(logger.Options{Format: "Logger: %s"})
		if err != nil {
			return err
		}
		l.SetOutput(cmd.OutOrStdout())
		return runDemo(l)
	},
}

func runDemo(l *logger.Logger) error {
	l.Log("This is log message")
	l.Info("This is info message")
	l.Error("This is error message")

	// Explicit format strings.
	l.Info("My name is %s and my salary is: %d", "Deepak", 2000)
	l.Warn("My name is %s and my salary is: %d", "Deepak", 2000)
	l.Error("My name is %s and my salary is: %d", "Deepak", 2000)

	if err := l.SetLevel(logger.LevelWarn); err != nil {
		return err
	}
	// Suppressed at level 2.
	l.Info("My name is %s and my salary is: %d", "Deepak", 2000)
	l.Warn("My name is %s and my salary is: %d", "Deepak", 2000)

	l.Inverse("This is inverse!!")
	l.Line()
	l.Line("This will print inside line")

	if err := l.SetLevel(logger.LevelInfo); err != nil {
		return err
	}
	l.SetFormat("This is something new version: %s")
	l.Info("1.0.1")
	l.Warn("1.0.2")

	l.Print("This is something new raw")
	l.Raw("This is something new version", ui.Green, false)
	l.Raw("\n=======================\n", ui.White, true)

	l.SetFormat("De-Structure: %s")
	fns := l.Bind()
	fns.Inverse("This is inverse")
	fns.Error("This is Error.")
	return nil
}
