package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/konsole/internal/errors"
	logger "github.com/PolarWolf314/konsole/internal/logging"
	"github.com/PolarWolf314/konsole/internal/prompt"
)

type Settings struct {
	Logger LoggerSettings `toml:"logger"`
	Prompt PromptSettings `toml:"prompt"`
}

type LoggerSettings struct {
	Level   int    `toml:"level"`
	Format  string `toml:"format"`
	NewLine bool   `toml:"new_line"`
}

type PromptSettings struct {
	Mask   string `toml:"mask"`
	NoMask bool   `toml:"no_mask"`
	Color  string `toml:"color"`
}

// DefaultSettings mirrors the logger and prompt defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Logger: LoggerSettings{
			Level:   int(logger.LevelLog),
			Format:  logger.DefaultFormat,
			NewLine: true,
		},
		Prompt: PromptSettings{
			Mask:  "*",
			Color: string(prompt.ColorGrey),
		},
	}
}

// DefaultPath returns <UserConfigDir>/konsole/config.toml.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "konsole", "config.toml"), nil
}

// Load reads the settings at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}

	return settings, nil
}

// Save writes settings to path, refusing to replace an existing file unless
// force is set.
func Save(path string, settings *Settings, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, kerrors.ErrConfigExists)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks the level range and the mask color.
func (s *Settings) Validate() error {
	if err := logger.Level(s.Logger.Level).Validate(); err != nil {
		return err
	}
	if _, err := prompt.ColorName(s.Prompt.Color).Code(); err != nil {
		return err
	}
	return nil
}

// LoggerOptions converts the logger section into logger options.
func (s *Settings) LoggerOptions() logger.Options {
	return logger.Options{
		Level:   logger.LevelPtr(logger.Level(s.Logger.Level)),
		Format:  s.Logger.Format,
		NewLine: logger.BoolPtr(s.Logger.NewLine),
	}
}

// PasswordOptions converts the prompt section into password options.
func (s *Settings) PasswordOptions() prompt.PasswordOptions {
	return prompt.PasswordOptions{
		Mask:   s.Prompt.Mask,
		NoMask: s.Prompt.NoMask,
		Color:  prompt.ColorName(s.Prompt.Color),
	}
}
