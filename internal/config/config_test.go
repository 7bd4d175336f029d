package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so
// the implicit search paths find nothing.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedMatchesDefaultConfig(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), fromYAML); diff != "" {
		t.Errorf("Embedded YAML drifted from DefaultConfig (-go +yaml):\n%s", diff)
	}
}

func TestLoadEmbedded(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Expected embedded source, got %q", cfg.Source)
	}
	if cfg.Paths.HighScore != filepath.Join(home, ".claudevaders-highscore") {
		t.Errorf("High score path not expanded: %q", cfg.Paths.HighScore)
	}
	if cfg.Paths.Signal != filepath.Join(home, ".claudevaders-signal") {
		t.Errorf("Signal path not expanded: %q", cfg.Paths.Signal)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	// Local configs directory is used when no user config exists
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "vaders.yaml"), []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected local config, got level %q from %s", cfg.Log.Level, cfg.Source)
	}

	// User config takes priority
	userDir := filepath.Join(home, ".vaders")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(userDir, "config.yaml")
	if err := os.WriteFile(userPath, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Source != userPath {
		t.Errorf("Expected user config, got level %q from %s", cfg.Log.Level, cfg.Source)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
paths:
  signal: /tmp/vaders-done
keys:
  fire: [space, w]
theme:
  alien: magenta
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Paths.Signal != "/tmp/vaders-done" {
		t.Errorf("Signal path not overridden: %q", cfg.Paths.Signal)
	}
	if diff := cmp.Diff([]string{"space", "w"}, cfg.Keys.Fire); diff != "" {
		t.Errorf("Fire keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(defaults.Keys.Left, cfg.Keys.Left); diff != "" {
		t.Errorf("Unset keys should keep defaults (-want +got):\n%s", diff)
	}
	if cfg.Theme.Alien != "magenta" || cfg.Theme.Player != defaults.Theme.Player {
		t.Errorf("Theme layering wrong: %+v", cfg.Theme)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("keys: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed custom config")
	}

	typo := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(typo, []byte("keys:\n  fier: [w]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(typo); err == nil {
		t.Error("Expected error for misspelled key")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(empty)
	if err != nil {
		t.Fatalf("Empty config should fall back to defaults: %v", err)
	}
	if cfg.Source != empty {
		t.Errorf("Expected source %q, got %q", empty, cfg.Source)
	}
}

func TestLoadSkipsBrokenImplicitConfig(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "vaders.yaml"), []byte("keys: 5"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Expected fallback to embedded, got %q", cfg.Source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unbound action", func(c *Config) { c.Keys.Pause = nil }, false},
		{"key on two actions", func(c *Config) { c.Keys.Fire = []string{"a"} }, false},
		{"alias collides", func(c *Config) { c.Keys.Pause = []string{" "} }, false},
		{"escape alias collides", func(c *Config) { c.Keys.Pause = []string{"escape"} }, false},
		{"empty key", func(c *Config) { c.Keys.Fire = []string{"  "} }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, false},
		{"missing signal path", func(c *Config) { c.Paths.Signal = "" }, false},
		{"rebound fire", func(c *Config) { c.Keys.Fire = []string{"w", "up"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"space":  " ",
		"SPACE":  " ",
		"escape": "esc",
		"ctrl+c": "ctrl+c",
		" A ":    "a",
		"left":   "left",
	}
	for in, want := range tests {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.vaders/history.db", filepath.Join(home, ".vaders/history.db")},
		{"/tmp/x", "/tmp/x"},
		{"relative/x", "relative/x"},
		{"~user/x", "~user/x"},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
