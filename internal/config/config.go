package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PINBOARD_"

// envKeys maps PINBOARD_* variables (prefix stripped) to config keys.
var envKeys = map[string]string{
	"TOKEN":        "pinboard.token",
	"HOST":         "pinboard.host",
	"AUTH_MODE":    "pinboard.auth_mode",
	"BASE_URL":     "pinboard.base_url",
	"TIMEOUT":      "http.timeout",
	"RECENT_COUNT": "recent.count",
	"LOG_LEVEL":    "log_level",
}

type ConfigPinboard struct {
	Token    string `koanf:"token" validate:"required"`
	Host     string `koanf:"host" validate:"required"`
	AuthMode string `koanf:"auth_mode" validate:"oneof=url header"`
	BaseURL  string `koanf:"base_url" validate:"omitempty,url"`
}

type ConfigHTTP struct {
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// ConfigRecent holds defaults for the recent command.
type ConfigRecent struct {
	Count int `koanf:"count" validate:"min=0,max=100"`
}

type Config struct {
	Pinboard ConfigPinboard `koanf:"pinboard"`
	HTTP     ConfigHTTP     `koanf:"http"`
	Recent   ConfigRecent   `koanf:"recent"`
	LogLevel string         `koanf:"log_level" validate:"oneof=error warn info debug"`
}

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("configuration validation failed: %v", validationErrors)
	}

	return err
}

// Load layers defaults, the YAML file at path (skipped when path is empty),
// PINBOARD_* environment variables and overrides, in that order. Override
// keys use the dotted form, e.g. "pinboard.token".
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := setDefaultValues(k); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey returns the config key for an environment variable, or "" to skip it.
func envKey(name string) string {
	return envKeys[strings.TrimPrefix(name, EnvPrefix)]
}

func setDefaultValues(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(map[string]any{
		"pinboard.host":      "api.pinboard.in",
		"pinboard.auth_mode": "url",
		"http.timeout":       "30s",
		"recent.count":       10,
		"log_level":          "info",
	}, "."), nil)
}
