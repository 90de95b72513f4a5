package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/konsole/internal/errors"
	logger "github.com/PolarWolf314/konsole/internal/logging"
	"github.com/PolarWolf314/konsole/internal/prompt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *settings != *DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults", *settings)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[logger]\nlevel = 2\n\n[prompt]\ncolor = \"cyan\"\n")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := DefaultSettings()
	want.Logger.Level = 2
	want.Prompt.Color = "cyan"
	if *settings != *want {
		t.Errorf("Load() = %+v, want %+v", *settings, *want)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"level out of range", "[logger]\nlevel = 5\n"},
		{"negative level", "[logger]\nlevel = -1\n"},
		{"unknown color", "[prompt]\ncolor = \"magenta\"\n"},
		{"malformed toml", "[logger\nlevel = 1\n"},
		{"unknown key", "[prompt]\nast = false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, kerrors.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSaveRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "konsole", "config.toml")

	if err := Save(path, DefaultSettings(), false); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := Save(path, DefaultSettings(), false); !errors.Is(err, kerrors.ErrConfigExists) {
		t.Errorf("second Save() error = %v, want ErrConfigExists", err)
	}

	changed := DefaultSettings()
	changed.Logger.Level = 3
	if err := Save(path, changed, true); err != nil {
		t.Fatalf("Save() with force failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Logger.Level != 3 {
		t.Errorf("Load() level = %d, want 3", loaded.Logger.Level)
	}
}

func TestSettingsConversions(t *testing.T) {
	settings := DefaultSettings()
	settings.Logger.Level = 1
	settings.Logger.NewLine = false
	settings.Prompt.NoMask = true
	settings.Prompt.Color = "green"

	opts := settings.LoggerOptions()
	if *opts.Level != logger.LevelInfo || *opts.NewLine || opts.Format != "%s" {
		t.Errorf("LoggerOptions() = level %d, newline %v, format %q", *opts.Level, *opts.NewLine, opts.Format)
	}

	pw := settings.PasswordOptions()
	want := prompt.PasswordOptions{Mask: "*", NoMask: true, Color: prompt.ColorGreen}
	if pw != want {
		t.Errorf("PasswordOptions() = %+v, want %+v", pw, want)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() failed: %v", err)
	}
	if filepath.Base(path) != "config.toml" || filepath.Base(filepath.Dir(path)) != "konsole" {
		t.Errorf("DefaultPath() = %q, want .../konsole/config.toml", path)
	}
}
