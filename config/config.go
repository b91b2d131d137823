package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Dot specifics
	Anthropic AnthropicConfig
	Airtable  AirtableConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AnthropicConfig configures the model client. A missing API key does
// not fail startup: the pass-through endpoints still work and /ask
// reports the model as unconfigured per turn.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

type AirtableConfig struct {
	APIKey  string
	BaseID  string
	BaseURL string
}

type SessionConfig struct {
	TimeoutMinutes int
	MaxTurns       int
}

type RateLimitConfig struct {
	AskPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}

	// Anthropic
	cfg.Anthropic.APIKey = viper.GetString("anthropic.api_key")
	cfg.Anthropic.Model = viper.GetString("anthropic.model")
	cfg.Anthropic.MaxTokens = viper.GetInt("anthropic.max_tokens")
	if key := viper.GetString("anthropic_api_key"); key != "" {
		cfg.Anthropic.APIKey = key
	}

	// Airtable
	cfg.Airtable.APIKey = viper.GetString("airtable.api_key")
	cfg.Airtable.BaseID = viper.GetString("airtable.base_id")
	cfg.Airtable.BaseURL = viper.GetString("airtable.base_url")
	if key := viper.GetString("airtable_api_key"); key != "" {
		cfg.Airtable.APIKey = key
	}
	if baseID := viper.GetString("airtable_base_id"); baseID != "" {
		cfg.Airtable.BaseID = baseID
	}

	// Sessions
	cfg.Session.TimeoutMinutes = viper.GetInt("session.timeout_minutes")
	cfg.Session.MaxTurns = viper.GetInt("session.max_turns")

	// Rate limiting
	cfg.RateLimit.AskPerMin = viper.GetInt("ratelimit.ask_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Airtable.APIKey == "" {
		return fmt.Errorf("airtable api key is required (AIRTABLE_API_KEY)")
	}
	if cfg.Airtable.BaseID == "" {
		return fmt.Errorf("airtable base id is required (AIRTABLE_BASE_ID)")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	viper.SetDefault("anthropic.max_tokens", 1000)

	viper.SetDefault("session.timeout_minutes", 30)
	viper.SetDefault("session.max_turns", 20)

	viper.SetDefault("ratelimit.ask_per_min", 60)
}
