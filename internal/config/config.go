package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
	"swipepager/internal/pager"
)

// EnvPrefix prefixes environment overrides, e.g. SWIPEPAGER_PAGER_DELTA_CUTOFF=0.7
const EnvPrefix = "SWIPEPAGER"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version" mapstructure:"version"`
	LogFile string        `toml:"log_file" mapstructure:"log_file"`
	Pager   PagerSettings `toml:"pager" mapstructure:"pager"`
	UI      UISettings    `toml:"ui" mapstructure:"ui"`
}

// PagerSettings tunes the transition engine
type PagerSettings struct {
	DeltaCutoff  float64 `toml:"delta_cutoff" mapstructure:"delta_cutoff"`
	HeightCutoff float64 `toml:"height_cutoff" mapstructure:"height_cutoff"` // rows the center page loses when the menu is open
	CornerRadius float64 `toml:"corner_radius" mapstructure:"corner_radius"`
	StartPage    int     `toml:"start_page" mapstructure:"start_page"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatus   bool `toml:"show_status" mapstructure:"show_status"`
	RememberPage bool `toml:"remember_page" mapstructure:"remember_page"`
	Mouse        bool `toml:"mouse" mapstructure:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	SaveStartPage(page int) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or for the default
// location under the user config directory when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns $XDG_CONFIG_HOME/swipepager/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "swipepager", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load layers defaults, the config file if it exists, and SWIPEPAGER_*
// environment variables, in increasing priority
func (cs *configService) Load() (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetConfigFile(cs.filePath)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(cs.filePath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("pager.delta_cutoff", cfg.Pager.DeltaCutoff)
	v.SetDefault("pager.height_cutoff", cfg.Pager.HeightCutoff)
	v.SetDefault("pager.corner_radius", cfg.Pager.CornerRadius)
	v.SetDefault("pager.start_page", cfg.Pager.StartPage)
	v.SetDefault("ui.show_status", cfg.UI.ShowStatus)
	v.SetDefault("ui.remember_page", cfg.UI.RememberPage)
	v.SetDefault("ui.mouse", cfg.UI.Mouse)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// SaveStartPage writes page back as pager.start_page. The rest of the file is
// re-read as stored, so environment overrides never reach the disk.
func (cs *configService) SaveStartPage(page int) error {
	cfg := DefaultConfig()
	if _, err := os.Stat(cs.filePath); err == nil {
		stored, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return err
		}
		cfg = stored
	}
	cfg.Pager.StartPage = page
	return cs.Save(cfg)
}

// LoadFromPath loads configuration from a specific path without defaults or environment
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// Validate checks the ranges the pager requires
func (c *Config) Validate() error {
	p := c.Pager
	if !(p.DeltaCutoff > 0 && p.DeltaCutoff <= 1) {
		return fmt.Errorf("%w: pager.delta_cutoff = %g, must be in (0, 1]", ErrInvalidConfig, p.DeltaCutoff)
	}
	if p.HeightCutoff < 0 {
		return fmt.Errorf("%w: pager.height_cutoff = %g, must not be negative", ErrInvalidConfig, p.HeightCutoff)
	}
	if p.CornerRadius < 0 {
		return fmt.Errorf("%w: pager.corner_radius = %g, must not be negative", ErrInvalidConfig, p.CornerRadius)
	}
	if !domain.Page(p.StartPage).Valid() {
		return fmt.Errorf("%w: pager.start_page = %d, must be 0, 1 or 2", ErrInvalidConfig, p.StartPage)
	}
	return nil
}

// Options converts the settings into pager options for a container of the given size
func (p PagerSettings) Options(width, height float64) pager.Options {
	return pager.Options{
		PagerWidth:      width,
		ScreenHeight:    height,
		DeltaCutoff:     p.DeltaCutoff,
		HeightCutoff:    p.HeightCutoff,
		MaxCornerRadius: p.CornerRadius,
		StartIndex:      domain.Page(p.StartPage),
	}
}

// DefaultConfig returns the default configuration. The height cutoff is in
// terminal rows, so it is far smaller than the pager package's pixel default.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "swipepager.log",
		Pager: PagerSettings{
			DeltaCutoff:  pager.DefaultDeltaCutoff,
			HeightCutoff: 4,
			CornerRadius: pager.DefaultMaxCornerRadius,
			StartPage:    int(domain.PageCenter),
		},
		UI: UISettings{
			ShowStatus:   true,
			RememberPage: true,
			Mouse:        true,
		},
	}
}
