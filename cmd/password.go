package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/konsole/internal/prompt"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const defaultPasswordMessage = "Enter Password Here: "

var (
	passwordMask   string
	passwordNoMask bool
	passwordColor  string
	passwordHash   bool
	passwordCost   int
)

func init() {
	passwordCmd.Flags().StringVar(&passwordMask, "mask", "", "symbol echoed for each key (default \"*\")")
	passwordCmd.Flags().BoolVar(&passwordNoMask, "no-mask", false, "echo nothing while typing")
	passwordCmd.Flags().StringVar(&passwordColor, "color", "", "mask color: cyan, green or grey (default grey)")
	passwordCmd.Flags().BoolVar(&passwordHash, "hash", false, "print a bcrypt hash instead of the password")
	passwordCmd.Flags().IntVar(&passwordCost, "cost", bcrypt.DefaultCost, "bcrypt cost used with --hash")
	RootCmd.AddCommand(passwordCmd)
}

// resetPasswordCommandState resets the password command's global state for testing.
func resetPasswordCommandState() {
	passwordMask = ""
	passwordNoMask = false
	passwordColor = ""
	passwordHash = false
	passwordCost = bcrypt.DefaultCost
}

var passwordCmd = &cobra.Command{
	Use:   "password [MESSAGE]",
	Short: "Read a password from the terminal, echoing a mask",
	Long: `Switches the terminal into raw mode and reads a password, echoing at
most five mask symbols whatever its length. Enter finishes the input;
Ctrl-C or Ctrl-D aborts with exit status 1.

Backspace is not interpreted: it becomes part of the password.

Examples:
  konsole password
  konsole password "Enter Password Here[-]: " --mask "-"
  konsole password --no-mask
  konsole password --color cyan --hash`,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := defaultPasswordMessage
		if len(args) > 0 {
			message = strings.Join(args, " ")
		}

		opts := passwordOptions(cmd)
		debugf("Password options: %+v", opts)

		secret, err := newConsole(cmd).Password(message, opts)
		if err != nil {
			return err
		}

		if !passwordHash {
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(secret), passwordCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		return nil
	},
}

// passwordOptions layers explicitly set flags over the configured prompt settings.
func passwordOptions(cmd *cobra.Command) prompt.PasswordOptions {
	opts := Settings.PasswordOptions()
	flags := cmd.Flags()
	if flags.Changed("mask") {
		opts.Mask = passwordMask
	}
	if flags.Changed("no-mask") {
		opts.NoMask = passwordNoMask
	}
	if flags.Changed("color") {
		opts.Color = prompt.ColorName(strings.ToLower(passwordColor))
	}
	return opts
}
