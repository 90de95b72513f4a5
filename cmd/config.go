package cmd

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/konsole/internal/configs"
	"github.com/PolarWolf314/konsole/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage konsole configuration",
	Long: `Provides commands for managing the konsole configuration file.

Examples:
  # Write the default configuration
  konsole config init

  # Write a configuration with warnings and errors only
  konsole --level 2 config init --force

  # Show the effective configuration
  konsole config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file",
	Long: `Writes the effective settings (defaults plus any flags given) to the
configuration file. An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Writing configuration...", cmd.OutOrStdout())
		defer cleanup()

		if err := configs.Save(SettingsPath, Settings, configInitForce); err != nil {
			spinner.FinalMSG = ""
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Configuration written to " + ui.Highlight.Sprint(SettingsPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the settings konsole runs with: the configuration file (or
the defaults when it does not exist) with flag overrides applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Loading configuration...", cmd.OutOrStdout())

		source := ui.Highlight.Sprint(SettingsPath)
		if _, err := os.Stat(SettingsPath); os.IsNotExist(err) {
			source += " " + ui.Muted.Sprint("not found, using defaults")
		}
		spinner.FinalMSG = ui.Info.Sprint("→") + " Configuration from " + source
		cleanup()

		return toml.NewEncoder(cmd.OutOrStdout()).Encode(Settings)
	},
}
