// Testing utilities shared by the command tests. They run the real command
// tree against buffers and a temporary config file.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/konsole/internal/prompt"
	"github.com/spf13/cobra"
)

// fakeRaw stands in for the terminal's raw mode.
type fakeRaw struct {
	entered  int
	restored int
}

func (f *fakeRaw) Enter() (func() error, error) {
	f.entered++
	return func() error {
		f.restored++
		return nil
	}, nil
}

// setupTestEnvironment resets global state, disables colors and returns a
// config path inside a temporary directory.
func setupTestEnvironment(t *testing.T, configContent string) string {
	t.Helper()
	ResetGlobalState()
	t.Setenv("NO_COLOR", "1")

	configPath := filepath.Join(t.TempDir(), "konsole", "config.toml")
	if configContent != "" {
		if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
			t.Fatalf("Failed to create config directory: %v", err)
		}
		if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
	}

	originalConsole := newConsole
	t.Cleanup(func() {
		newConsole = originalConsole
		ResetGlobalState()
	})
	return configPath
}

// useFakeTerminal makes prompts read from the command's stdin with a fake raw mode.
func useFakeTerminal(t *testing.T) *fakeRaw {
	t.Helper()
	raw := &fakeRaw{}
	newConsole = func(cmd *cobra.Command) *prompt.Console {
		return &prompt.Console{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
			Raw: raw,
			Exit: func(code int) {
				t.Errorf("unexpected exit(%d)", code)
			},
		}
	}
	return raw
}

// runCLI executes the command tree with args, feeding stdin and capturing
// stdout and stderr.
func runCLI(t *testing.T, configPath, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
