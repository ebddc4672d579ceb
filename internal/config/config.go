package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"petitions/internal/domain"
	"petitions/internal/petitions"
)

const (
	// AppName is used for the config directory and default log file name
	AppName = "petitions"
)

// Config represents the application configuration
type Config struct {
	Version int         `toml:"version"`
	API     APISettings `toml:"api"`
	UI      UISettings  `toml:"ui"`
	Log     LogSettings `toml:"log"`
}

// APISettings controls how petitions are fetched
type APISettings struct {
	BaseURL        string   `toml:"base_url"`
	Limit          int      `toml:"limit"`
	SignatureFloor int      `toml:"signature_floor"`
	Timeout        Duration `toml:"timeout"` // zero means the transport default
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartTab        string `toml:"start_tab"` // "all" or "popular"
	CompactOnScroll bool   `toml:"compact_on_scroll"`
}

// LogSettings configures the rotating log file
type LogSettings struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Duration is a time.Duration that reads and writes as a string like "10s"
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the default file location
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(DefaultDir(), "config.toml")}
}

// NewConfigServiceForPath creates a config service backed by an explicit file
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultDir returns $XDG_CONFIG_HOME/petitions, falling back to ~/.config/petitions
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from the
// file keep their default values. Values are not validated here: callers
// merge their overrides first and then call Validate.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise only fail at fetch time
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q", c.API.BaseURL)
	}
	if c.API.Limit <= 0 {
		return fmt.Errorf("api.limit must be positive, got %d", c.API.Limit)
	}
	if c.API.SignatureFloor < 0 {
		return fmt.Errorf("api.signature_floor must not be negative, got %d", c.API.SignatureFloor)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if _, err := domain.ParseMode(c.UI.StartTab); err != nil {
		return fmt.Errorf("invalid ui.start_tab: %w", err)
	}
	return nil
}

// StartMode returns the tab selected at startup
func (c *Config) StartMode() domain.Mode {
	m, _ := domain.ParseMode(c.UI.StartTab)
	return m
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:        petitions.DefaultBaseURL,
			Limit:          petitions.DefaultLimit,
			SignatureFloor: petitions.DefaultSignatureFloor,
		},
		UI: UISettings{
			StartTab:        domain.ModeAll.String(),
			CompactOnScroll: true,
		},
		Log: LogSettings{
			Level:      "info",
			File:       filepath.Join(DefaultDir(), AppName+".log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}
