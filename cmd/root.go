package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/konsole/internal/configs"
	kerrors "github.com/PolarWolf314/konsole/internal/errors"
	logger "github.com/PolarWolf314/konsole/internal/logging"
	"github.com/PolarWolf314/konsole/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath string
	levelFlag  string
	formatFlag string
	noNewLine  bool
	debug      bool

	// Logger is the output logger, configured from the config file and flags.
	Logger *logger.Logger
	// Diag carries the CLI's own diagnostics to stderr when --debug is set.
	Diag *logger.Logger
	// Settings are the effective settings after flags are applied.
	Settings *configs.Settings
	// SettingsPath is where Settings were read from.
	SettingsPath string

	RootCmd = &cobra.Command{
		Use:   "konsole",
		Short: "konsole - colorized leveled logging and masked prompts for the terminal.",
		Long: `konsole prints leveled, colorized messages and reads lines or passwords
from the terminal.

Levels:
  0  log    grey, shown only at level 0
  1  info   cyan, shown at level 1 or lower
  2  warn   yellow, shown at level 2 or lower
  3  error  red, always shown

Defaults come from ~/.config/konsole/config.toml (see 'konsole config init')
and can be overridden with flags.

Examples:
  konsole info "deploy finished"
  konsole --level 2 warn "disk at %d%%" 91
  konsole line "Release notes"
  konsole password "Enter Password Here: " --mask "-"`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogger,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is <user config dir>/konsole/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&levelFlag, "level", "l", "", "minimum level to print: 0-3 or log, info, warn, error")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "default format for single-argument messages")
	RootCmd.PersistentFlags().BoolVar(&noNewLine, "no-newline", false, "do not end messages with a newline")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// setupLogger loads the config file, applies flag overrides and builds the loggers.
func setupLogger(cmd *cobra.Command, args []string) error {
	Diag = logger.Default()
	Diag.SetOutput(cmd.ErrOrStderr())
	debugf("Initializing %s with config=%q level=%q format=%q", cmd.CommandPath(), configPath, levelFlag, formatFlag)

	SettingsPath = configPath
	if SettingsPath == "" {
		path, err := configs.DefaultPath()
		if err != nil {
			return err
		}
		SettingsPath = path
	}

	settings, err := configs.Load(SettingsPath)
	switch {
	case errors.Is(err, kerrors.ErrInvalidConfig) && cmd == configInitCmd:
		// config init is how an invalid file gets replaced.
		debugf("Ignoring invalid settings for %s: %v", cmd.CommandPath(), err)
		settings = configs.DefaultSettings()
	case err != nil:
		return err
	}
	debugf("Loaded settings from %s: %+v", SettingsPath, *settings)

	flags := cmd.Flags()
	if flags.Changed("level") {
		level, err := logger.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		settings.Logger.Level = int(level)
	}
	if flags.Changed("format") {
		settings.Logger.Format = formatFlag
	}
	if flags.Changed("no-newline") {
		settings.Logger.NewLine = !noNewLine
	}

	l, err := logger.New(settings.LoggerOptions())
	if err != nil {
		return err
	}
	l.SetOutput(cmd.OutOrStdout())

	Settings = settings
	Logger = l
	debugf("Logger ready: level=%s format=%q newline=%t", l.Level(), l.Format(), l.NewLine())
	return nil
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		return 1
	}
	return 0
}

// formatError formats an error for display to the user.
func formatError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrInvalidLevel):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Use a level between 0 (log) and 3 (error)"

	case errors.Is(err, kerrors.ErrInvalidColor):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Use one of " + ui.Highlight.Sprint("cyan") + ", " +
			ui.Highlight.Sprint("green") + " or " + ui.Highlight.Sprint("grey")

	case errors.Is(err, kerrors.ErrNotTerminal):
		return ui.Error.Sprint("✗") + " Cannot read a password: stdin is not a terminal\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("konsole password") + " from an interactive shell"

	case errors.Is(err, kerrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Fix the file or run " + ui.Code.Sprint("konsole config init --force")

	case errors.Is(err, kerrors.ErrConfigExists):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("konsole config init --force") + " to overwrite it"

	default:
		return ui.Error.Sprint("✗") + " " + err.Error()
	}
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	configPath = ""
	levelFlag = ""
	formatFlag = ""
	noNewLine = false
	debug = false
	Logger = nil
	Diag = nil
	Settings = nil
	SettingsPath = ""
	resetRawCommandState()
	resetPasswordCommandState()
	resetBannerCommandState()
	resetConfigInitState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed mark on every flag of the command tree.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
		_ = flag.Value.Set(flag.DefValue)
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
