package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/steamworkshop/workshop"
)

// EnvPrefix prefixes every environment override, e.g. WORKSHOP_STEAM_API_KEY.
const EnvPrefix = "WORKSHOP"

// MaxSearchCount is the largest page size QueryFiles accepts.
const MaxSearchCount = 100

// Load loads the configuration from file and environment.
// A missing config file is not an error when no explicit path was given.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".workshop"))
		}

		// Check /etc
		v.AddConfigPath("/etc/workshop/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Steam defaults. Empty keys are registered so environment overrides are picked up.
	v.SetDefault("steam.api_key", "")
	v.SetDefault("steam.proxy_url", "")
	v.SetDefault("steam.base_url", workshop.DefaultBaseURL)

	v.SetDefault("http.timeout", "30s")

	// Search defaults
	v.SetDefault("search.app_id", 0)
	v.SetDefault("search.count", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Steam.APIKey == "your-api-key-here" {
		return fmt.Errorf("steam.api_key must be set to a valid API key or left empty")
	}

	if err := validateURL("steam.base_url", cfg.Steam.BaseURL, true); err != nil {
		return err
	}
	if err := validateURL("steam.proxy_url", cfg.Steam.ProxyURL, false); err != nil {
		return err
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", cfg.HTTP.Timeout)
	}

	if cfg.Search.Count < 1 || cfg.Search.Count > MaxSearchCount {
		return fmt.Errorf("search.count must be between 1 and %d, got %d", MaxSearchCount, cfg.Search.Count)
	}

	for name, expression := range cfg.Search.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("search.filters.%s has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

func validateURL(key, raw string, required bool) error {
	if raw == "" {
		if required {
			return fmt.Errorf("%s is required", key)
		}
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", key, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}

// Preset returns the filter expression registered under name.
func (c *Config) Preset(name string) (string, bool) {
	expression, ok := c.Search.Filters[name]
	return expression, ok
}
