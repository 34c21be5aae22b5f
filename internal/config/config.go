// Package config loads and validates aggregator configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Config captures all aggregator knobs loaded via Viper. Every key can come
// from a config file or a CONFAB_* environment variable.
type Config struct {
	Output     string        `mapstructure:"output"`
	WebhookURL string        `mapstructure:"webhook_url"`
	UserAgent  string        `mapstructure:"user_agent"`
	Years      []int         `mapstructure:"years"`
	HTTP       HTTPConfig    `mapstructure:"http"`
	Logging    LoggingConfig `mapstructure:"logging"`
	Notify     NotifyConfig  `mapstructure:"notify"`
}

// HTTPConfig configures the shared fetch client.
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxRetries     int `mapstructure:"max_retries"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// NotifyConfig controls the notification channel.
type NotifyConfig struct {
	DryRun bool `mapstructure:"dry_run"`
}

// Load builds a Config from disk/environment. An empty path skips the config
// file and uses defaults plus environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CONFAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "data/conferences.json")
	// Registered so AutomaticEnv can surface CONFAB_WEBHOOK_URL in Unmarshal.
	v.SetDefault("webhook_url", "")
	v.SetDefault("user_agent", "confab/1.0 (github.com/confab-dev/confab)")
	v.SetDefault("years", []int{time.Now().UTC().Year(), time.Now().UTC().Year() + 1})
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.max_retries", 2)
	v.SetDefault("logging.development", false)
	v.SetDefault("notify.dry_run", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.UserAgent, validation.Required),
		validation.Field(&c.Years, validation.Required, validation.Length(1, 5)),
		validation.Field(&c.HTTP),
	)
}

// Validate checks client limits.
func (c HTTPConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TimeoutSeconds, validation.Required, validation.Min(1), validation.Max(300)),
		validation.Field(&c.MaxRetries, validation.Min(0), validation.Max(10)),
	)
}

// Timeout converts the HTTP timeout config into a duration.
func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
