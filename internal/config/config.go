package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds everything the connector core needs to parameterise
// itself. It deliberately omits the broader deployment concerns (datastore
// DSNs, brokers, telemetry backends) — those are wired by the host
// application, not this core.
type Configuration struct {
	Connector ConnectorConfig `validate:"required"`
	Logging   LoggingConfig   `validate:"required"`
	Cache     CacheConfig     `validate:"required"`
	Locale    LocaleConfig    `validate:"required"`
	Payouts   PayoutsConfig   `validate:"omitempty"`
}

// ConnectorConfig governs outbound HTTP behaviour towards the gateway.
// The HTTP client itself is an external collaborator (§1); this only
// carries the knobs the request builder and tracker need to reason about
// (e.g. deriving the REQUEST_TIMEOUT_ERROR_CODE error on timeout).
type ConnectorConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout" default:"30s"`
	RetryOnClosed  bool          `mapstructure:"retry_on_closed_connection" default:"true"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" default:"info"`
}

// CacheConfig toggles the in-process GSM / card-testing caches.
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled" default:"true"`
	DefaultTTL time.Duration `mapstructure:"default_ttl" default:"30m"`
}

// LocaleConfig is consulted by the unified-message translation hook (§9
// "Locale translation of unified messages"); on a miss the original
// unified message is used, never failing the flow.
type LocaleConfig struct {
	Default string `mapstructure:"default" default:"en-US"`
}

// PayoutsConfig gates the feature-gated payout-fulfill flow (§4.4.9, §9
// "Feature-gated flows") so a deployment without payout licensing never
// builds a payout request.
type PayoutsConfig struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
}

// NewConfig loads configuration the way the rest of the ecosystem does:
// an optional .env file, a YAML file if present, then environment
// variable overrides under the ROUTEPAY_ prefix.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("ROUTEPAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("connector.request_timeout", 30*time.Second)
	v.SetDefault("connector.retry_on_closed_connection", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.default_ttl", 30*time.Minute)
	v.SetDefault("locale.default", "en-US")
	v.SetDefault("payouts.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return &cfg, nil
}

// GetDefaultConfig returns sane in-process defaults, used by components
// and tests that construct the core without a YAML/env source.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Connector: ConnectorConfig{RequestTimeout: 30 * time.Second, RetryOnClosed: true},
		Logging:   LoggingConfig{Level: "info"},
		Cache:     CacheConfig{Enabled: true, DefaultTTL: 30 * time.Minute},
		Locale:    LocaleConfig{Default: "en-US"},
		Payouts:   PayoutsConfig{Enabled: false},
	}
}
