package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded marks a config that came from the built-in defaults.
const SourceEmbedded = "embedded"

// Load reads the configuration.
// Search order: customPath -> ~/.vaders/config.yaml -> ./configs/vaders.yaml -> embedded default
//
// Files are layered over the defaults, so a partial file only overrides
// the keys it names. A custom path that cannot be read or parsed is an
// error; the implicit locations are skipped when unusable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return Config{}, err
		}
		return finish(cfg)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, path); err == nil {
			return finish(cfg)
		}
	}

	cfg, err := parse(defaultYAML, SourceEmbedded)
	if err != nil {
		// Fallback to hardcoded if embed fails
		cfg = DefaultConfig()
		cfg.Source = SourceEmbedded
	}
	return finish(cfg)
}

// parse decodes data on top of the defaults. Unknown keys are rejected so
// a misspelled section does not silently fall back to the default.
func parse(data []byte, source string) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// finish expands paths and validates.
func finish(cfg Config) (Config, error) {
	if err := cfg.expandPaths(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Paths.HighScore, &c.Paths.Signal, &c.Paths.HistoryDB, &c.Paths.Log} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath("config.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "vaders.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vaders", filename)
}
