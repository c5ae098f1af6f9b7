package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Steam   SteamConfig   `mapstructure:"steam"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SteamConfig holds Steam Web API connection details
type SteamConfig struct {
	APIKey   string `mapstructure:"api_key"`
	ProxyURL string `mapstructure:"proxy_url"`
	BaseURL  string `mapstructure:"base_url"`
}

// HTTPConfig configures the shared HTTP client
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// SearchConfig contains search defaults and named filter presets
type SearchConfig struct {
	AppID   uint64            `mapstructure:"app_id"`
	Count   int               `mapstructure:"count"`
	Filters map[string]string `mapstructure:"filters"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
