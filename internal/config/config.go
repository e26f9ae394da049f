package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/im-sticky/mtg-card-seer/internal/placement"
	"github.com/im-sticky/mtg-card-seer/internal/scryfall"
)

// Config represents the application configuration.
type Config struct {
	// Card data API settings
	API APIConfig `toml:"api"`

	// Preview panel settings
	Panel PanelConfig `toml:"panel"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// APIConfig contains card-data API settings.
type APIConfig struct {
	Root      string `toml:"root"`       // API root URL
	UserAgent string `toml:"user_agent"` // User-Agent header
	Timeout   string `toml:"timeout"`    // Request timeout (e.g. "30s")
	RateLimit string `toml:"rate_limit"` // Minimum delay between requests (e.g. "100ms")
}

// PanelConfig contains preview panel dimensions.
type PanelConfig struct {
	Width       float64 `toml:"width"`        // Panel width in pixels
	Height      float64 `toml:"height"`       // Panel height in pixels
	MobileScale float64 `toml:"mobile_scale"` // Dimension scale below the mobile breakpoint
	MobileWidth float64 `toml:"mobile_width"` // Mobile breakpoint in pixels
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Root:      scryfall.DefaultBaseURL,
			UserAgent: "mtg-card-seer/1.0",
			Timeout:   "30s",
			RateLimit: "100ms",
		},
		Panel: PanelConfig{
			Width:       222,
			Height:      310,
			MobileScale: 0.8,
			MobileWidth: 768,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".cardseer")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("invalid API timeout %q: %w", c.API.Timeout, err)
	}

	if _, err := time.ParseDuration(c.API.RateLimit); err != nil {
		return fmt.Errorf("invalid API rate limit %q: %w", c.API.RateLimit, err)
	}

	if c.API.Root == "" {
		return fmt.Errorf("API root cannot be empty")
	}

	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		return fmt.Errorf("panel dimensions must be positive: %gx%g", c.Panel.Width, c.Panel.Height)
	}

	if c.Panel.MobileScale <= 0 || c.Panel.MobileScale > 1 {
		return fmt.Errorf("mobile scale must be in (0, 1]: %g", c.Panel.MobileScale)
	}

	return nil
}

// ClientOptions builds Scryfall client options from the configuration.
func (c *Config) ClientOptions() (scryfall.Options, error) {
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return scryfall.Options{}, fmt.Errorf("invalid API timeout %q: %w", c.API.Timeout, err)
	}

	rateLimit, err := time.ParseDuration(c.API.RateLimit)
	if err != nil {
		return scryfall.Options{}, fmt.Errorf("invalid API rate limit %q: %w", c.API.RateLimit, err)
	}

	return scryfall.Options{
		BaseURL:   c.API.Root,
		UserAgent: c.API.UserAgent,
		Timeout:   timeout,
		RateLimit: rateLimit,
	}, nil
}

// PanelSize returns the preview panel size for the given viewport, applying
// the mobile scale below the breakpoint.
func (c *Config) PanelSize(viewport placement.Size) placement.Size {
	size := placement.Size{Width: c.Panel.Width, Height: c.Panel.Height}
	if viewport.Width > 0 && viewport.Width < c.Panel.MobileWidth {
		size.Width *= c.Panel.MobileScale
		size.Height *= c.Panel.MobileScale
	}
	return size
}
