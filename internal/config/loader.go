package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Load loads the configuration.
// Search order: customPath -> ~/.advent/config.yaml -> ./configs/advent.yaml -> embedded default.
// Files are decoded over Default(), so a partial file only overrides what it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, p := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "advent.yaml")} {
		if cfg, ok := tryLoad(p); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and parses an optional config file. A missing file is not an
// error; a file that fails to parse is warned about and skipped.
func tryLoad(path string) (Config, bool) {
	if path == "" {
		return Config{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		log.Warn("ignoring config", "path", path, "error", err)
		return Config{}, false
	}
	return cfg, true
}

// Parse checks YAML against the schema, decodes it over the defaults and
// validates the result.
func Parse(data []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := checkSchema(doc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case len(c.Tower.Shapes) == 0:
		return fmt.Errorf("tower.shapes must not be empty: %w", ErrInvalid)
	case c.Tower.SignatureWindow <= 0:
		return fmt.Errorf("tower.signature_window must be positive, got %d: %w", c.Tower.SignatureWindow, ErrInvalid)
	case c.Tower.MaxSimulated < 0:
		return fmt.Errorf("tower.max_simulated must not be negative, got %d: %w", c.Tower.MaxSimulated, ErrInvalid)
	case c.Tower.Part1Target < 0 || c.Tower.Part2Target < 0:
		return fmt.Errorf("tower targets must not be negative: %w", ErrInvalid)
	case c.Basin.MaxFrontier < 0:
		return fmt.Errorf("basin.max_frontier must not be negative, got %d: %w", c.Basin.MaxFrontier, ErrInvalid)
	case c.Basin.MaxTicks <= 0:
		return fmt.Errorf("basin.max_ticks must be positive, got %d: %w", c.Basin.MaxTicks, ErrInvalid)
	case c.Watch.TickRate <= 0:
		return fmt.Errorf("watch.tick_rate must be positive, got %d: %w", c.Watch.TickRate, ErrInvalid)
	case c.Watch.StepsPerFrame <= 0:
		return fmt.Errorf("watch.steps_per_frame must be positive, got %d: %w", c.Watch.StepsPerFrame, ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".advent", filename)
}
