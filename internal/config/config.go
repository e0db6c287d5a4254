package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"dirjump/internal/domain"
	"dirjump/internal/fuzzy"
)

const (
	appName    = "dirjump"
	configFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Scorer     string     `toml:"scorer"`
	ShowHidden bool       `toml:"show_hidden"`
	LogFile    string     `toml:"log_file"`
	UI         UISettings `toml:"ui"`
	Keys       Keys       `toml:"keys"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	VisibleRows    int    `toml:"visible_rows"`
	ShowHelp       bool   `toml:"show_help"`
	PathColor      string `toml:"path_color"`
	QueryColor     string `toml:"query_color"`
	DirColor       string `toml:"dir_color"`
	HighlightColor string `toml:"highlight_color"`
}

// Keys overrides key bindings; an empty list keeps the default keys
type Keys struct {
	Up              []string `toml:"up"`
	Down            []string `toml:"down"`
	Descend         []string `toml:"descend"`
	Ascend          []string `toml:"ascend"`
	ConfirmSelected []string `toml:"confirm_selected"`
	ConfirmCurrent  []string `toml:"confirm_current"`
	ClearQuery      []string `toml:"clear_query"`
	Cancel          []string `toml:"cancel"`
}

// ConfigService handles configuration loading
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading from the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, appName, configFile),
	}
}

// Path returns the default config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default location.
// A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, &domain.ConfigError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if c.UI.VisibleRows < 1 {
		return fmt.Errorf("ui.visible_rows must be at least 1, got %d", c.UI.VisibleRows)
	}
	if _, err := fuzzy.New(c.Scorer); err != nil {
		return err
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scorer:     fuzzy.ScorerFuzzy,
		ShowHidden: true,
		UI: UISettings{
			VisibleRows:    30,
			ShowHelp:       true,
			PathColor:      "3", // yellow
			QueryColor:     "1", // red
			DirColor:       "4", // blue
			HighlightColor: "2", // green
		},
	}
}
