package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestLoadReturnsErrNotConfiguredWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLoadOrDefaultFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadOrDefault()
	if err != nil {
		t.Fatalf("load or default: %v", err)
	}
	if cfg.Theme != ThemeDark || cfg.Locale != "en" || cfg.Precision != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	wantKeymap := filepath.Join(home, ".cli-calc", "keymap.json")
	if cfg.KeymapFile != wantKeymap {
		t.Fatalf("expected keymap file %q, got %q", wantKeymap, cfg.KeymapFile)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{
		Theme:       "Light",
		Locale:      "de",
		Precision:   4,
		DefaultTool: " percent-of ",
		KeymapFile:  "~/keys.json",
		Keybindings: map[string]string{"tool.next": "ctrl+l"},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	exists, err := Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.Theme != ThemeLight {
		t.Fatalf("expected theme %q, got %q", ThemeLight, loaded.Theme)
	}
	if loaded.Locale != "de" {
		t.Fatalf("expected locale de, got %q", loaded.Locale)
	}
	if loaded.Precision != 4 {
		t.Fatalf("expected precision 4, got %d", loaded.Precision)
	}
	if loaded.DefaultTool != "percent-of" {
		t.Fatalf("expected default tool percent-of, got %q", loaded.DefaultTool)
	}
	if loaded.KeymapFile != filepath.Join(home, "keys.json") {
		t.Fatalf("expected keymap file in home, got %q", loaded.KeymapFile)
	}
	if loaded.Keybindings["tool.next"] != "ctrl+l" {
		t.Fatalf("expected keybinding override, got %+v", loaded.Keybindings)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config path: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 config file, got %v", info.Mode().Perm())
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{"theme": "light"}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Precision != 2 {
		t.Fatalf("expected default precision 2, got %d", cfg.Precision)
	}
	if cfg.Locale != "en" {
		t.Fatalf("expected default locale en, got %q", cfg.Locale)
	}
}

func TestLoadAllowsZeroPrecision(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{"precision": 0}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Precision != 0 {
		t.Fatalf("expected explicit precision 0 to survive, got %d", cfg.Precision)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "theme", body: `{"theme": "solarized"}`},
		{name: "locale", body: `{"locale": "not a locale!"}`},
		{name: "negative precision", body: `{"precision": -1}`},
		{name: "huge precision", body: `{"precision": 40}`},
		{name: "json", body: `{"theme": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			writeConfig(t, home, tt.body)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s", tt.body)
			}
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	if got, err := NormalizeTheme(""); err != nil || got != ThemeDark {
		t.Fatalf("expected empty theme to default to dark, got %q, %v", got, err)
	}
	if got, err := NormalizeTheme(" LIGHT "); err != nil || got != ThemeLight {
		t.Fatalf("expected light, got %q, %v", got, err)
	}
	if _, err := NormalizeTheme("neon"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestFormatOptions(t *testing.T) {
	cfg := Config{Locale: "de", Precision: 3}
	opts := cfg.FormatOptions()
	if opts.MaximumFractionDigits != 3 {
		t.Fatalf("expected 3 digits, got %d", opts.MaximumFractionDigits)
	}
	if opts.Locale != language.German {
		t.Fatalf("expected German locale, got %v", opts.Locale)
	}
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
