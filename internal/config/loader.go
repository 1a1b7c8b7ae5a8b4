package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config file checked after the user file.
const LocalPath = "configs/t2048.yaml"

// Loader finds and parses the game configuration.
type Loader struct {
	UserPath  string // empty disables the user config lookup
	LocalPath string // empty disables the local config lookup
	Logger    *log.Logger
}

// NewLoader returns a loader using the standard search paths.
func NewLoader(logger *log.Logger) Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Loader{
		UserPath:  userConfigPath("config.yaml"),
		LocalPath: LocalPath,
		Logger:    logger,
	}
}

// Load loads configuration with the standard search paths.
func Load(customPath string) (Game, error) {
	return NewLoader(nil).Load(customPath)
}

// Load resolves the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// files are skipped when missing or malformed. The result is validated.
func (l Loader) Load(customPath string) (Game, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Game{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Game{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		logger.Debug("loaded config", "source", customPath)
		return cfg, cfg.Validate()
	}

	for _, path := range []string{l.UserPath, l.LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			logger.Warn("ignoring malformed config", "source", path, "error", err)
			continue
		}
		logger.Debug("loaded config", "source", path)
		return cfg, cfg.Validate()
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	logger.Debug("loaded config", "source", "embedded")
	return cfg, cfg.Validate()
}

// parse decodes YAML over the built-in defaults so partial files work.
func parse(data []byte) (Game, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}
