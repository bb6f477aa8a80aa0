package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/treykane/cli-calc/internal/calc"
	"github.com/treykane/cli-calc/internal/logging"
)

var log = logging.New("config")

const (
	configDirName     = ".cli-calc"
	configFileName    = "config.json"
	keymapFileName    = "keymap.json"
	defaultLocaleName = "en"
)

// Theme names accepted in config.json.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var ErrNotConfigured = errors.New("cli-calc is not configured")

// Config stores user-defined cli-calc settings.
type Config struct {
	Theme       string            `json:"theme"`
	Locale      string            `json:"locale"`
	Precision   int               `json:"precision"`
	DefaultTool string            `json:"default_tool,omitempty"`
	Keybindings map[string]string `json:"keybindings,omitempty"`
	KeymapFile  string            `json:"keymap_file,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	cfg := Config{
		Theme:     ThemeDark,
		Locale:    defaultLocaleName,
		Precision: calc.DefaultFractionDigits,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.KeymapFile = filepath.Join(home, configDirName, keymapFileName)
	}
	return cfg
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads and validates the saved configuration. Fields missing from the
// file keep their Default values.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault is Load with ErrNotConfigured mapped to Default.
func LoadOrDefault() (Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotConfigured) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.normalize(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("config saved", "path", path)
	return nil
}

// FormatOptions converts the display settings into calculator options.
// Locale was validated on load, so a parse failure here falls back to
// English.
func (c Config) FormatOptions() calc.FormatOptions {
	opts := calc.DefaultFormatOptions()
	opts.MaximumFractionDigits = c.Precision
	if tag, err := ParseLocale(c.Locale); err == nil {
		opts.Locale = tag
	}
	return opts
}

func (c *Config) normalize() error {
	theme, err := NormalizeTheme(c.Theme)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	c.Theme = theme

	tag, err := ParseLocale(c.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}
	c.Locale = tag.String()

	if c.Precision < 0 || c.Precision > calc.MaxFractionDigits {
		return fmt.Errorf("invalid precision: %d is outside 0-%d", c.Precision, calc.MaxFractionDigits)
	}

	c.DefaultTool = strings.TrimSpace(c.DefaultTool)

	if strings.TrimSpace(c.KeymapFile) != "" {
		keymap, err := expandHome(strings.TrimSpace(c.KeymapFile))
		if err != nil {
			return fmt.Errorf("invalid keymap_file: %w", err)
		}
		c.KeymapFile = filepath.Clean(keymap)
	}
	return nil
}

// NormalizeTheme lowercases a theme name; empty selects the dark theme.
func NormalizeTheme(theme string) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(theme)); t {
	case "":
		return ThemeDark, nil
	case ThemeDark, ThemeLight:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q", theme)
	}
}

// ParseLocale parses a BCP 47 tag such as "en", "de-CH" or "fr"; empty
// selects English.
func ParseLocale(locale string) (language.Tag, error) {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		trimmed = defaultLocaleName
	}
	return language.Parse(trimmed)
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
