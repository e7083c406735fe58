// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves websearch settings and credentials from flags,
// environment, an optional YAML config file, and the secrets directory.
// Everything is read once at startup into a Config value; no other package
// reads the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/websearch/internal/search"
	"github.com/pdiddy/websearch/internal/secrets"
	"github.com/pdiddy/websearch/pkg/types"
)

// Viper keys. Flags bind to the same keys.
const (
	KeyMaxResults = "search.max_results"
	KeyMaxRetries = "search.max_retries"
	KeyRetryDelay = "search.retry_delay"
	KeyTimeout    = "search.timeout"
	KeyUserAgent  = "search.user_agent"
	KeyOutput     = "output"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyAPIKey     = "google.api_key"
	KeySearchCX   = "google.search_cx"
)

// Credential environment variables. They carry no prefix.
const (
	EnvAPIKey   = "GOOGLE_API_KEY"
	EnvSearchCX = "GOOGLE_SEARCH_CX"
)

// EnvPrefix namespaces every non-credential environment override.
const EnvPrefix = "WEBSEARCH"

// Config is the fully resolved configuration for one run.
type Config struct {
	Search      types.SearchConfig `mapstructure:"search"`
	Output      string             `mapstructure:"output"`
	Log         LogConfig          `mapstructure:"log"`
	Credentials types.Credentials  `mapstructure:"-"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewViper returns a viper instance with defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// Credentials keep their conventional unprefixed names.
	mustBindEnv(v, KeyAPIKey, EnvAPIKey)
	mustBindEnv(v, KeySearchCX, EnvSearchCX)
	return v
}

func mustBindEnv(v *viper.Viper, key, env string) {
	if err := v.BindEnv(key, env); err != nil {
		panic(fmt.Sprintf("binding %s to %s: %v", key, env, err))
	}
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxResults, types.DefaultMaxResults)
	v.SetDefault(KeyMaxRetries, types.DefaultMaxRetries)
	v.SetDefault(KeyRetryDelay, types.DefaultRetryDelay)
	v.SetDefault(KeyTimeout, types.DefaultTimeout)
	v.SetDefault(KeyUserAgent, types.DefaultUserAgent)
	v.SetDefault(KeyOutput, search.FormatNameText)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// ReadFile loads cfgFile, or searches ./websearch.yaml and
// ~/.config/websearch/websearch.yaml when cfgFile is empty. It returns the
// path used, or "" when no file was found.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("websearch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "websearch"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// LoadDotEnv loads variables from the given .env files without overriding
// anything already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load resolves the configuration from v, falling back to sec for
// credentials that neither the environment nor the config file supplied.
func Load(v *viper.Viper, sec secrets.Secrets) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Credentials = types.Credentials{
		APIKey:         firstNonEmpty(v.GetString(KeyAPIKey), sec.Get(secrets.GoogleAPIKey)),
		SearchEngineID: firstNonEmpty(v.GetString(KeySearchCX), sec.Get(secrets.GoogleSearchCX)),
	}
	return cfg, nil
}

// Validate reports missing credentials as *search.ConfigurationError and
// rejects out-of-range search settings and unknown output formats.
func (c Config) Validate() error {
	if err := search.CheckCredentials(c.Credentials); err != nil {
		return err
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("max results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1, got %d", c.Search.MaxRetries)
	}
	if c.Search.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative, got %v", c.Search.RetryDelay)
	}
	switch c.Output {
	case "", search.FormatNameText, search.FormatNameJSON, search.FormatNameYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", c.Output)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
